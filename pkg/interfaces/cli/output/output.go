package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mfields/supplyplan/pkg/application/dto"
	"github.com/mfields/supplyplan/pkg/domain/entities"
)

// FormatResultSummary renders a ScenarioResult as the plain-text block that
// downstream report builders concatenate verbatim. Field order and presence
// are part of the contract; do not reorder.
func FormatResultSummary(r *entities.ScenarioResult) string {
	lines := []string{
		fmt.Sprintf("Scenario: %s", r.ScenarioName),
		fmt.Sprintf("Order: %.0f kg titanium", r.OrderQuantityKg),
		fmt.Sprintf("Feasible: %s", feasibleLabel(r.Feasible)),
		fmt.Sprintf("Total Delivery Time: %.1f weeks", r.TotalDeliveryWeeks),
		fmt.Sprintf("Total Cost: $%s", r.TotalCostUSD.StringFixed(2)),
		fmt.Sprintf("Suppliers Used: %s", joinSupplierIDs(r.SuppliersUsed)),
		"Allocation:",
	}
	for _, id := range r.SuppliersUsed {
		lines = append(lines, fmt.Sprintf("  - %s: %.0f kg", id, r.Allocation.QuantityFor(id)))
	}
	if len(r.Notes) > 0 {
		lines = append(lines, "Notes:")
		for _, note := range r.Notes {
			lines = append(lines, "  - "+note)
		}
	}
	return strings.Join(lines, "\n")
}

// WriteComparisonTable prints one row per policy for side-by-side reading
func WriteComparisonTable(w io.Writer, results []*entities.ScenarioResult) {
	fmt.Fprintf(w, "%-15s %14s %12s %10s\n", "Strategy", "Cost", "Delivery", "Feasible")
	fmt.Fprintf(w, "%-15s %14s %12s %10s\n",
		strings.Repeat("-", 15), strings.Repeat("-", 14), strings.Repeat("-", 12), strings.Repeat("-", 10))
	for _, r := range results {
		fmt.Fprintf(w, "%-15s %14s %12s %10s\n",
			r.Policy,
			"$"+r.TotalCostUSD.StringFixed(2),
			fmt.Sprintf("%.1f wk", r.TotalDeliveryWeeks),
			feasibleLabel(r.Feasible))
	}
}

// WriteJSON emits the results as indented JSON via the transport mapping
func WriteJSON(w io.Writer, results []*entities.ScenarioResult) error {
	out := make([]dto.ScenarioResult, 0, len(results))
	for _, r := range results {
		out = append(out, dto.FromScenarioResult(r))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

func feasibleLabel(feasible bool) string {
	if feasible {
		return "Yes"
	}
	return "NO"
}

func joinSupplierIDs(ids []entities.SupplierID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}
	return strings.Join(parts, ", ")
}
