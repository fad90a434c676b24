package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	for _, pref := range []string{"", "auto", "simplex"} {
		backend, err := Resolve(pref)
		require.NoError(t, err, "preference %q", pref)
		assert.Equal(t, "simplex", backend.Name())
	}

	backend, err := Resolve("greedy")
	require.NoError(t, err)
	assert.Equal(t, "greedy", backend.Name())

	_, err = Resolve("none")
	assert.ErrorIs(t, err, ErrNoBackend)

	_, err = Resolve("cplex")
	assert.ErrorIs(t, err, ErrNoBackend)
}

func backends() []Backend {
	return []Backend{NewSimplexBackend(), NewGreedyBackend()}
}

func TestSolve_FillsCheapestFirst(t *testing.T) {
	p := Problem{
		Coefficients: []float64{2, 1, 3},
		UpperBounds:  []float64{10, 10, 10},
		Demand:       15,
	}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			x, err := b.Solve(p)
			require.NoError(t, err)
			require.Len(t, x, 3)

			assert.InDelta(t, 5, x[0], 1e-6)
			assert.InDelta(t, 10, x[1], 1e-6)
			assert.InDelta(t, 0, x[2], 1e-6)
		})
	}
}

func TestSolve_ExactDemandAtBounds(t *testing.T) {
	p := Problem{
		Coefficients: []float64{1, 2},
		UpperBounds:  []float64{8, 7},
		Demand:       15,
	}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			x, err := b.Solve(p)
			require.NoError(t, err)

			assert.InDelta(t, 8, x[0], 1e-6)
			assert.InDelta(t, 7, x[1], 1e-6)
		})
	}
}

func TestSolve_ZeroRangeObjective(t *testing.T) {
	// All-equal (here: all-zero) coefficients must not crash; any feasible
	// split is optimal.
	p := Problem{
		Coefficients: []float64{0, 0},
		UpperBounds:  []float64{100, 100},
		Demand:       50,
	}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			x, err := b.Solve(p)
			require.NoError(t, err)

			total := x[0] + x[1]
			assert.InDelta(t, 50, total, 1e-6)
			assert.LessOrEqual(t, x[0], 100.0)
			assert.LessOrEqual(t, x[1], 100.0)
		})
	}
}

func TestSolve_RelaxedMaximizesFulfillment(t *testing.T) {
	// Relaxed mode with the fulfillment bias applied: every coefficient is
	// negative, so the solver fills as much capacity as the demand allows.
	p := Problem{
		Coefficients: []float64{-1000 + 32, -1000 + 28},
		UpperBounds:  []float64{30, 40},
		Demand:       100, // more than total capacity
		Relaxed:      true,
	}

	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			x, err := b.Solve(p)
			require.NoError(t, err)

			assert.InDelta(t, 30, x[0], 1e-6)
			assert.InDelta(t, 40, x[1], 1e-6)
		})
	}
}

func TestGreedy_RelaxedSkipsUnprofitableVariables(t *testing.T) {
	p := Problem{
		Coefficients: []float64{5, -2},
		UpperBounds:  []float64{10, 10},
		Demand:       15,
		Relaxed:      true,
	}

	x, err := NewGreedyBackend().Solve(p)
	require.NoError(t, err)

	assert.InDelta(t, 0, x[0], 1e-6, "positive coefficient should not be filled under <=")
	assert.InDelta(t, 10, x[1], 1e-6)
}

func TestGreedy_EqualityInfeasible(t *testing.T) {
	p := Problem{
		Coefficients: []float64{1},
		UpperBounds:  []float64{10},
		Demand:       20,
	}

	_, err := NewGreedyBackend().Solve(p)
	assert.Error(t, err)
}

func TestSolve_MalformedProblem(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			_, err := b.Solve(Problem{})
			assert.Error(t, err)

			_, err = b.Solve(Problem{Coefficients: []float64{1, 2}, UpperBounds: []float64{1}, Demand: 1})
			assert.Error(t, err)

			_, err = b.Solve(Problem{Coefficients: []float64{1}, UpperBounds: []float64{1}, Demand: -1})
			assert.Error(t, err)
		})
	}
}
