package evaluation

import (
	"context"
	"fmt"

	"github.com/mfields/supplyplan/pkg/domain/entities"
)

// Compare runs the same disruption scenario under every allocation policy and
// returns the results in a fixed order: the three heuristics, then (when a
// solver backend is available) the three LP objectives. Downstream best-of
// selection and display depend on this stable enumeration, so the order is
// part of the contract.
func (e *Evaluator) Compare(
	ctx context.Context,
	suppliers []*entities.Supplier,
	disruption entities.Disruption,
	orderQuantityKg float64,
	qualifiedOnly bool,
) ([]*entities.ScenarioResult, error) {
	policies := entities.HeuristicPolicies()
	if e.HasSolver() {
		policies = append(policies, entities.LPPolicies()...)
	}

	results := make([]*entities.ScenarioResult, 0, len(policies))
	for _, policy := range policies {
		result, err := e.RunScenario(ctx, suppliers, disruption, orderQuantityKg, qualifiedOnly, policy)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", policy, err)
		}
		result.ScenarioName = fmt.Sprintf("%s [%s]", result.ScenarioName, policy)
		results = append(results, result)
	}

	return results, nil
}
