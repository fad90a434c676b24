// Package solver provides pluggable LP backends for the allocation problem:
// minimize a linear objective over per-supplier quantities subject to a
// fulfillment constraint and per-supplier capacity bounds.
package solver

import (
	"errors"
	"fmt"
)

// Problem is a single bounded allocation LP:
//
//	minimize   sum( Coefficients[i] * x[i] )
//	subject to sum(x) = Demand    (or <= Demand when Relaxed)
//	           0 <= x[i] <= UpperBounds[i]
type Problem struct {
	Coefficients []float64
	UpperBounds  []float64
	Demand       float64
	// Relaxed replaces the demand equality with an inequality, allowing
	// partial fulfillment
	Relaxed bool
}

func (p Problem) validate() error {
	n := len(p.Coefficients)
	if n == 0 {
		return errors.New("problem has no variables")
	}
	if len(p.UpperBounds) != n {
		return fmt.Errorf("problem has %d coefficients but %d bounds", n, len(p.UpperBounds))
	}
	if p.Demand < 0 {
		return fmt.Errorf("demand cannot be negative, got %g", p.Demand)
	}
	for i, ub := range p.UpperBounds {
		if ub < 0 {
			return fmt.Errorf("upper bound %d cannot be negative, got %g", i, ub)
		}
	}
	return nil
}

// Backend solves bounded allocation LPs
type Backend interface {
	Name() string
	Solve(p Problem) ([]float64, error)
}

// ErrNoBackend is returned when an LP policy is requested but no solver
// backend is available. Heuristic policies never hit this.
var ErrNoBackend = errors.New("no LP solver backend available")

// Resolve picks the backend for a configured preference. It is meant to be
// called once at startup and the result threaded through explicitly, not
// probed again per call.
func Resolve(preference string) (Backend, error) {
	switch preference {
	case "", "auto", "simplex":
		return NewSimplexBackend(), nil
	case "greedy":
		return NewGreedyBackend(), nil
	case "none":
		// Deployments can disable LP policies outright; callers fall back
		// to heuristics themselves.
		return nil, ErrNoBackend
	default:
		return nil, fmt.Errorf("%w: unknown solver preference %q", ErrNoBackend, preference)
	}
}
