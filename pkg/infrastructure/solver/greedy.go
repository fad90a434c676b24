package solver

import (
	"fmt"
	"math"
	"sort"
)

// GreedyBackend fills capacity in ascending coefficient order. The allocation
// LP has a single fulfillment constraint plus box bounds, so the greedy fill
// is the exact minimizer for this family (the continuous knapsack rule); it
// is not a general LP solver.
type GreedyBackend struct{}

// NewGreedyBackend creates the greedy fill solver
func NewGreedyBackend() *GreedyBackend {
	return &GreedyBackend{}
}

// Verify interface compliance
var _ Backend = (*GreedyBackend)(nil)

// Name returns the backend identifier
func (b *GreedyBackend) Name() string {
	return "greedy"
}

// Solve assigns demand to variables from cheapest coefficient upward. In
// relaxed mode only variables whose coefficient reduces the objective are
// filled, matching what an exact solver would do with the inequality
// constraint.
func (b *GreedyBackend) Solve(p Problem) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	n := len(p.Coefficients)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, c int) bool {
		return p.Coefficients[order[a]] < p.Coefficients[order[c]]
	})

	x := make([]float64, n)
	remaining := p.Demand
	for _, i := range order {
		if remaining <= 0 {
			break
		}
		if p.Relaxed && p.Coefficients[i] >= 0 {
			break // nothing past this point improves the objective
		}
		take := math.Min(remaining, p.UpperBounds[i])
		x[i] = take
		remaining -= take
	}

	if !p.Relaxed && remaining > 1e-9 {
		return nil, fmt.Errorf("infeasible: demand %g exceeds total capacity %g", p.Demand, p.Demand-remaining)
	}

	return x, nil
}
