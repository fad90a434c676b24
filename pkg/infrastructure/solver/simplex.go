package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// SimplexBackend solves the allocation LP exactly with gonum's simplex
// implementation.
type SimplexBackend struct{}

// NewSimplexBackend creates the gonum-backed solver
func NewSimplexBackend() *SimplexBackend {
	return &SimplexBackend{}
}

// Verify interface compliance
var _ Backend = (*SimplexBackend)(nil)

// Name returns the backend identifier
func (b *SimplexBackend) Name() string {
	return "simplex"
}

// Solve converts the box-constrained problem to the standard form gonum
// expects. Each variable gets a slack row x[i] + s[i] = ub[i]; the demand
// constraint gets one more row, with its own slack variable when relaxed.
func (b *SimplexBackend) Solve(p Problem) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	n := len(p.Coefficients)
	cols := 2 * n
	if p.Relaxed {
		cols++
	}
	rows := n + 1

	c := make([]float64, cols)
	copy(c, p.Coefficients)

	a := mat.NewDense(rows, cols, nil)
	rhs := make([]float64, rows)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
		a.Set(i, n+i, 1)
		rhs[i] = p.UpperBounds[i]
	}
	for i := 0; i < n; i++ {
		a.Set(n, i, 1)
	}
	if p.Relaxed {
		a.Set(n, 2*n, 1)
	}
	rhs[n] = p.Demand

	_, x, err := lp.Simplex(c, a, rhs, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("simplex solve failed: %w", err)
	}

	return x[:n], nil
}
