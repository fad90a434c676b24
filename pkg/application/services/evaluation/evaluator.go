// Package evaluation turns allocations into comparable scenario metrics:
// per-supplier completion times, total cost, and feasibility.
package evaluation

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfields/supplyplan/pkg/application/services/allocation"
	"github.com/mfields/supplyplan/pkg/domain/entities"
	"github.com/mfields/supplyplan/pkg/domain/services"
	"github.com/mfields/supplyplan/pkg/infrastructure/solver"
)

// DefaultFeasibilityTolerance is the fraction of the requested demand that
// must be allocated for a scenario to count as feasible. The tolerance
// absorbs rounding noise, not genuine shortfalls, and is always measured
// against the originally requested quantity.
const DefaultFeasibilityTolerance = 0.95

// Evaluator drives scenario evaluation across allocation policies
type Evaluator struct {
	heuristics *allocation.HeuristicAllocator
	optimizer  *allocation.Optimizer // nil when no solver backend resolved
	tolerance  float64
}

// NewEvaluator creates a scenario evaluator. Pass a nil optimizer when no LP
// backend is available; heuristic policies still work and LP policies return
// solver.ErrNoBackend.
func NewEvaluator(
	heuristics *allocation.HeuristicAllocator,
	optimizer *allocation.Optimizer,
	tolerance float64,
) *Evaluator {
	if tolerance <= 0 || tolerance > 1 {
		tolerance = DefaultFeasibilityTolerance
	}
	return &Evaluator{
		heuristics: heuristics,
		optimizer:  optimizer,
		tolerance:  tolerance,
	}
}

// HasSolver reports whether LP policies can be evaluated
func (e *Evaluator) HasSolver() bool {
	return e.optimizer != nil
}

// RunScenario evaluates a single disruption scenario under one policy.
//
// Recoverable conditions (capacity shortfall, solver-reported infeasibility)
// are absorbed into the result's notes and feasibility flag; only
// configuration-level misuse returns an error.
func (e *Evaluator) RunScenario(
	ctx context.Context,
	suppliers []*entities.Supplier,
	disruption entities.Disruption,
	orderQuantityKg float64,
	qualifiedOnly bool,
	policy entities.Policy,
) (*entities.ScenarioResult, error) {
	if orderQuantityKg < 0 {
		return nil, fmt.Errorf("order quantity cannot be negative, got %g", orderQuantityKg)
	}

	eligible, notes := services.Eligible(suppliers, disruption, qualifiedOnly)

	if len(eligible) == 0 {
		notes = append(notes, "NO SUPPLIERS AVAILABLE. Order cannot be fulfilled.")
		return &entities.ScenarioResult{
			RunID:             uuid.NewString(),
			ScenarioName:      scenarioName(disruption),
			Policy:            policy,
			DisruptedSupplier: disruption.SupplierID,
			DisruptionWeeks:   disruption.Weeks,
			OrderQuantityKg:   orderQuantityKg,
			TotalCostUSD:      decimal.Zero,
			SuppliersUsed:     []entities.SupplierID{},
			Allocation:        entities.Allocation{},
			Feasible:          false,
			Notes:             notes,
		}, nil
	}

	var (
		alloc        entities.Allocation
		backendName  string
		weightedLead float64
	)

	if policy.IsLP() {
		if e.optimizer == nil {
			return nil, fmt.Errorf("policy %s: %w", policy, solver.ErrNoBackend)
		}
		res, err := e.optimizer.Allocate(eligible, orderQuantityKg, policy)
		if err != nil {
			return nil, err
		}
		alloc = res.Allocation
		backendName = res.Backend
		weightedLead = res.WeightedLeadTimeWeeks
		notes = append(notes, res.Notes...)
	} else {
		var err error
		alloc, err = e.heuristics.Allocate(eligible, orderQuantityKg, policy)
		if err != nil {
			return nil, err
		}
		weightedLead = allocationWeightedLeadTime(eligible, alloc)
	}

	totalAllocated := alloc.TotalKg()
	feasible := totalAllocated >= orderQuantityKg*e.tolerance
	if !feasible {
		notes = append(notes, fmt.Sprintf(
			"WARNING: Shortfall of %.0f kg. Available capacity cannot fully cover the order.",
			orderQuantityKg-totalAllocated))
	}

	// Per-supplier completion: a supplier cannot beat its quoted lead time,
	// and large allocations extend completion once production throughput
	// becomes the bottleneck. The order is done when the slowest contributor
	// finishes.
	var deliveryWeeks float64
	totalCost := decimal.Zero
	used := make([]entities.SupplierID, 0, len(alloc))
	for _, s := range eligible { // eligible order keeps output deterministic
		kg, ok := alloc[s.ID]
		if !ok {
			continue
		}
		completion := math.Max(s.LeadTimeWeeks, kg/s.CapacityKgPerWeek)
		if completion > deliveryWeeks {
			deliveryWeeks = completion
		}
		totalCost = totalCost.Add(decimal.NewFromFloat(kg).Mul(s.CostPerKg))
		used = append(used, s.ID)
	}

	return &entities.ScenarioResult{
		RunID:                 uuid.NewString(),
		ScenarioName:          scenarioName(disruption),
		Policy:                policy,
		DisruptedSupplier:     disruption.SupplierID,
		DisruptionWeeks:       disruption.Weeks,
		OrderQuantityKg:       orderQuantityKg,
		TotalDeliveryWeeks:    math.Round(deliveryWeeks*10) / 10,
		TotalCostUSD:          totalCost.Round(2),
		WeightedLeadTimeWeeks: weightedLead,
		SuppliersUsed:         used,
		Allocation:            alloc,
		Feasible:              feasible,
		SolverBackend:         backendName,
		Notes:                 notes,
	}, nil
}

func scenarioName(d entities.Disruption) string {
	if d.IsBaseline() {
		return "Baseline (no disruption)"
	}
	return fmt.Sprintf("Disruption: %s (%dwk)", d.SupplierID, d.Weeks)
}

func allocationWeightedLeadTime(eligible []*entities.Supplier, alloc entities.Allocation) float64 {
	var num, total float64
	for _, s := range eligible {
		kg := alloc.QuantityFor(s.ID)
		num += kg * s.LeadTimeWeeks
		total += kg
	}
	if total == 0 {
		return 0
	}
	return math.Round(num/total*10) / 10
}
