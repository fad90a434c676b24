package services

import (
	"fmt"

	"github.com/mfields/supplyplan/pkg/domain/entities"
)

// Eligible returns the suppliers that may take allocation for a scenario:
// the disrupted supplier is removed, and non-qualified suppliers are removed
// when qualifiedOnly is set. Catalog order is preserved; the heuristics rely
// on their own explicit sorting, not on filter order.
//
// Every exclusion is reported as a note so the scenario result can carry the
// full story to downstream reporting.
func Eligible(
	suppliers []*entities.Supplier,
	disruption entities.Disruption,
	qualifiedOnly bool,
) ([]*entities.Supplier, []string) {
	var eligible []*entities.Supplier
	var notes []string

	for _, s := range suppliers {
		if !disruption.IsBaseline() && s.ID == disruption.SupplierID {
			notes = append(notes, fmt.Sprintf(
				"%s (%s) is OFFLINE for %d weeks.", s.ID, s.Region, disruption.Weeks))
			continue
		}
		if qualifiedOnly && !s.IsQualified {
			notes = append(notes, fmt.Sprintf(
				"%s (%s) excluded - not aerospace-qualified.", s.ID, s.Region))
			continue
		}
		eligible = append(eligible, s)
	}

	return eligible, notes
}
