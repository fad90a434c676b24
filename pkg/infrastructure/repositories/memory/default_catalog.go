package memory

import (
	"github.com/shopspring/decimal"

	"github.com/mfields/supplyplan/pkg/domain/entities"
)

// DefaultSuppliers returns the built-in five-supplier titanium catalog used
// by demos and tests when no CSV file is supplied.
func DefaultSuppliers() []*entities.Supplier {
	return []*entities.Supplier{
		{
			ID:                "Titan-US",
			Region:            "United States",
			LeadTimeWeeks:     4,
			CapacityKgPerWeek: 800,
			CostPerKg:         decimal.NewFromFloat(32.00),
			QualityRating:     0.95,
			IsQualified:       true,
		},
		{
			ID:                "Titan-JP",
			Region:            "Japan",
			LeadTimeWeeks:     6,
			CapacityKgPerWeek: 1200,
			CostPerKg:         decimal.NewFromFloat(28.00),
			QualityRating:     0.92,
			IsQualified:       true,
		},
		{
			ID:                "Titan-RU",
			Region:            "Russia",
			LeadTimeWeeks:     8,
			CapacityKgPerWeek: 2000,
			CostPerKg:         decimal.NewFromFloat(22.00),
			QualityRating:     0.88,
			IsQualified:       true,
		},
		{
			ID:                "Titan-CN",
			Region:            "China",
			LeadTimeWeeks:     7,
			CapacityKgPerWeek: 1500,
			CostPerKg:         decimal.NewFromFloat(24.00),
			QualityRating:     0.85,
			IsQualified:       false, // not yet aerospace-qualified
		},
		{
			ID:                "Titan-AU",
			Region:            "Australia",
			LeadTimeWeeks:     5,
			CapacityKgPerWeek: 600,
			CostPerKg:         decimal.NewFromFloat(35.00),
			QualityRating:     0.90,
			IsQualified:       true,
		},
	}
}
