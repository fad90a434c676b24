// Package allocation implements the strategies that split an order across
// eligible suppliers: three greedy heuristics and an LP-backed optimizer.
package allocation

import (
	"fmt"
	"math"
	"sort"

	"github.com/mfields/supplyplan/pkg/domain/entities"
)

// PlanningHorizonWeeks is the default capacity planning window
const PlanningHorizonWeeks = 12

// HeuristicAllocator splits demand across eligible suppliers with greedy
// rule-based policies. It never over-allocates beyond the total horizon
// capacity of the eligible set; any shortfall is reported upstream as
// infeasibility, not here.
type HeuristicAllocator struct {
	horizonWeeks int
}

// NewHeuristicAllocator creates a heuristic allocator for the given planning
// horizon. A non-positive horizon falls back to the default.
func NewHeuristicAllocator(horizonWeeks int) *HeuristicAllocator {
	if horizonWeeks <= 0 {
		horizonWeeks = PlanningHorizonWeeks
	}
	return &HeuristicAllocator{horizonWeeks: horizonWeeks}
}

// Allocate splits orderQuantityKg across the eligible suppliers per policy
func (h *HeuristicAllocator) Allocate(
	eligible []*entities.Supplier,
	orderQuantityKg float64,
	policy entities.Policy,
) (entities.Allocation, error) {
	switch policy {
	case entities.PolicyProportional:
		return h.proportional(eligible, orderQuantityKg), nil
	case entities.PolicyCheapestFirst:
		return h.greedyFill(eligible, orderQuantityKg, func(a, b *entities.Supplier) bool {
			return a.CostPerKg.LessThan(b.CostPerKg)
		}), nil
	case entities.PolicyFastestFirst:
		return h.greedyFill(eligible, orderQuantityKg, func(a, b *entities.Supplier) bool {
			return a.LeadTimeWeeks < b.LeadTimeWeeks
		}), nil
	default:
		return nil, fmt.Errorf("policy %q is not a heuristic policy", policy)
	}
}

// proportional splits demand by weekly capacity share. Demand is first
// clamped to the total horizon capacity so each share stays within its
// supplier's horizon bound.
func (h *HeuristicAllocator) proportional(
	eligible []*entities.Supplier,
	orderQuantityKg float64,
) entities.Allocation {
	var totalWeeklyCapacity float64
	for _, s := range eligible {
		totalWeeklyCapacity += s.CapacityKgPerWeek
	}
	if totalWeeklyCapacity == 0 {
		return entities.Allocation{}
	}

	demand := math.Min(orderQuantityKg, totalWeeklyCapacity*float64(h.horizonWeeks))

	raw := make(map[entities.SupplierID]float64, len(eligible))
	for _, s := range eligible {
		raw[s.ID] = demand * s.CapacityKgPerWeek / totalWeeklyCapacity
	}
	return entities.NewAllocation(raw)
}

// greedyFill assigns demand to suppliers in sorted order, each up to its
// horizon capacity. The sort is stable so ties keep catalog order.
func (h *HeuristicAllocator) greedyFill(
	eligible []*entities.Supplier,
	orderQuantityKg float64,
	less func(a, b *entities.Supplier) bool,
) entities.Allocation {
	sorted := make([]*entities.Supplier, len(eligible))
	copy(sorted, eligible)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	raw := make(map[entities.SupplierID]float64, len(sorted))
	remaining := orderQuantityKg
	for _, s := range sorted {
		if remaining <= 0 {
			break
		}
		take := math.Min(remaining, s.HorizonCapacityKg(h.horizonWeeks))
		raw[s.ID] = take
		remaining -= take
	}
	return entities.NewAllocation(raw)
}
