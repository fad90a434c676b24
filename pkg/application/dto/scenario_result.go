package dto

import "github.com/mfields/supplyplan/pkg/domain/entities"

// ScenarioResult is the JSON-facing projection of a scenario evaluation.
// Decimal money values are flattened to floats for downstream consumers.
type ScenarioResult struct {
	RunID                 string             `json:"run_id"`
	ScenarioName          string             `json:"scenario_name"`
	Policy                string             `json:"policy"`
	DisruptedSupplier     string             `json:"disrupted_supplier"`
	DisruptionWeeks       int                `json:"disruption_weeks"`
	OrderQuantityKg       float64            `json:"order_quantity_kg"`
	TotalDeliveryWeeks    float64            `json:"total_delivery_weeks"`
	TotalCostUSD          float64            `json:"total_cost_usd"`
	WeightedLeadTimeWeeks float64            `json:"weighted_lead_time_weeks,omitempty"`
	SolverBackend         string             `json:"solver_backend,omitempty"`
	SuppliersUsed         []string           `json:"suppliers_used"`
	Allocation            map[string]float64 `json:"allocation"`
	Feasible              bool               `json:"feasible"`
	Notes                 []string           `json:"notes"`
}

// FromScenarioResult maps a domain result to its transport form
func FromScenarioResult(r *entities.ScenarioResult) ScenarioResult {
	used := make([]string, 0, len(r.SuppliersUsed))
	for _, id := range r.SuppliersUsed {
		used = append(used, string(id))
	}

	alloc := make(map[string]float64, len(r.Allocation))
	for id, kg := range r.Allocation {
		alloc[string(id)] = kg
	}

	return ScenarioResult{
		RunID:                 r.RunID,
		ScenarioName:          r.ScenarioName,
		Policy:                string(r.Policy),
		DisruptedSupplier:     string(r.DisruptedSupplier),
		DisruptionWeeks:       r.DisruptionWeeks,
		OrderQuantityKg:       r.OrderQuantityKg,
		TotalDeliveryWeeks:    r.TotalDeliveryWeeks,
		TotalCostUSD:          r.TotalCostUSD.InexactFloat64(),
		WeightedLeadTimeWeeks: r.WeightedLeadTimeWeeks,
		SolverBackend:         r.SolverBackend,
		SuppliersUsed:         used,
		Allocation:            alloc,
		Feasible:              r.Feasible,
		Notes:                 r.Notes,
	}
}
