package allocation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/mfields/supplyplan/pkg/domain/entities"
	"github.com/mfields/supplyplan/pkg/infrastructure/solver"
)

// fulfillmentBias is the per-kg reward subtracted from the objective in the
// relaxed fallback formulation. It makes total fulfillment dominate the
// original objective: a single weighted objective approximating lexicographic
// maximize-fill-then-optimize, not an exact two-phase method.
const fulfillmentBias = 1000.0

// Optimizer formulates the allocation LP and drives a solver backend.
//
// Formulation per call: decision variables x[i] in [0, capacity[i]*horizon],
// one constraint sum(x) = min(demand, total horizon capacity). Demand is
// pre-clamped so the equality is always satisfiable.
type Optimizer struct {
	backend      solver.Backend
	horizonWeeks int
	costWeight   float64
	timeWeight   float64
}

// NewOptimizer creates an LP-backed allocator. The backend is resolved once
// at startup by the caller; a nil backend makes every call fail with
// solver.ErrNoBackend.
func NewOptimizer(backend solver.Backend, horizonWeeks int, costWeight, timeWeight float64) *Optimizer {
	if horizonWeeks <= 0 {
		horizonWeeks = PlanningHorizonWeeks
	}
	return &Optimizer{
		backend:      backend,
		horizonWeeks: horizonWeeks,
		costWeight:   costWeight,
		timeWeight:   timeWeight,
	}
}

// Result carries the allocation and solver metadata for one LP policy run
type Result struct {
	Allocation            entities.Allocation
	ObjectiveValue        float64
	Backend               string
	TotalCostUSD          decimal.Decimal
	WeightedLeadTimeWeeks float64
	Notes                 []string
}

// Allocate solves the LP for the given objective policy. Solver-reported
// infeasibility triggers the relaxed fallback; if that also fails the result
// is a zero allocation plus a warning note, never a hard error, so the caller
// can still compare across policies.
func (o *Optimizer) Allocate(
	eligible []*entities.Supplier,
	orderQuantityKg float64,
	policy entities.Policy,
) (*Result, error) {
	if o.backend == nil {
		return nil, solver.ErrNoBackend
	}
	if !policy.IsLP() {
		return nil, fmt.Errorf("policy %q is not an LP policy", policy)
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("no eligible suppliers to optimize over")
	}

	var notes []string

	upperBounds := make([]float64, len(eligible))
	var totalCapacity float64
	for i, s := range eligible {
		upperBounds[i] = s.HorizonCapacityKg(o.horizonWeeks)
		totalCapacity += upperBounds[i]
	}

	if totalCapacity < orderQuantityKg {
		notes = append(notes, fmt.Sprintf(
			"Total available capacity (%.0f kg) is less than order (%.0f kg). Solver will maximize fulfillment.",
			totalCapacity, orderQuantityKg))
	}

	coeffs := o.objectiveCoefficients(eligible, policy)
	demand := math.Min(orderQuantityKg, totalCapacity)

	values, err := o.backend.Solve(solver.Problem{
		Coefficients: coeffs,
		UpperBounds:  upperBounds,
		Demand:       demand,
	})
	if err != nil {
		// Relax the equality and bias toward fulfillment.
		biased := make([]float64, len(coeffs))
		for i, c := range coeffs {
			biased[i] = c - fulfillmentBias
		}
		values, err = o.backend.Solve(solver.Problem{
			Coefficients: biased,
			UpperBounds:  upperBounds,
			Demand:       demand,
			Relaxed:      true,
		})
		if err != nil {
			values = make([]float64, len(eligible))
			notes = append(notes, "LP solver failed; returning zero allocation.")
		}
	}

	raw := make(map[entities.SupplierID]float64, len(eligible))
	var objectiveValue float64
	for i, s := range eligible {
		raw[s.ID] = values[i]
		objectiveValue += coeffs[i] * values[i]
	}
	alloc := entities.NewAllocation(raw)

	totalCost := decimal.Zero
	var weightedLeadNum, totalAllocated float64
	for _, s := range eligible {
		kg, ok := alloc[s.ID]
		if !ok {
			continue
		}
		totalCost = totalCost.Add(decimal.NewFromFloat(kg).Mul(s.CostPerKg))
		weightedLeadNum += kg * s.LeadTimeWeeks
		totalAllocated += kg
	}
	var weightedLead float64
	if totalAllocated > 0 {
		weightedLead = weightedLeadNum / totalAllocated
	}

	return &Result{
		Allocation:            alloc,
		ObjectiveValue:        math.Round(objectiveValue*100) / 100,
		Backend:               o.backend.Name(),
		TotalCostUSD:          totalCost.Round(2),
		WeightedLeadTimeWeeks: math.Round(weightedLead*10) / 10,
		Notes:                 notes,
	}, nil
}

// objectiveCoefficients derives the per-supplier minimization weights.
// The balanced blend min-max normalizes cost and lead time over the eligible
// set; a zero range contributes nothing and uses a unit denominator so equal
// values never divide by zero.
func (o *Optimizer) objectiveCoefficients(eligible []*entities.Supplier, policy entities.Policy) []float64 {
	costs := make([]float64, len(eligible))
	times := make([]float64, len(eligible))
	for i, s := range eligible {
		costs[i] = s.CostPerKg.InexactFloat64()
		times[i] = s.LeadTimeWeeks
	}

	switch policy {
	case entities.PolicyMinCost:
		return costs
	case entities.PolicyMinTime:
		return times
	default: // balanced
		minC, maxC := minMax(costs)
		minT, maxT := minMax(times)
		rangeC := maxC - minC
		if rangeC == 0 {
			rangeC = 1
		}
		rangeT := maxT - minT
		if rangeT == 0 {
			rangeT = 1
		}

		coeffs := make([]float64, len(eligible))
		for i := range eligible {
			coeffs[i] = o.costWeight*(costs[i]-minC)/rangeC + o.timeWeight*(times[i]-minT)/rangeT
		}
		return coeffs
	}
}

func minMax(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
