package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SupplierID uniquely identifies a supplier in the catalog
type SupplierID string

// Supplier represents a single titanium supplier with its economics and
// capacity constraints. Supplier records are read-only inputs to every
// computation; nothing in the engine mutates them after construction.
type Supplier struct {
	ID                SupplierID
	Region            string
	LeadTimeWeeks     float64         // normal delivery lead time
	CapacityKgPerWeek float64         // maximum weekly output
	CostPerKg         decimal.Decimal // unit cost in USD
	QualityRating     float64         // 0.0 to 1.0, informational only
	IsQualified       bool            // aerospace qualification status
}

// NewSupplier creates a validated supplier record
func NewSupplier(
	id SupplierID,
	region string,
	leadTimeWeeks float64,
	capacityKgPerWeek float64,
	costPerKg decimal.Decimal,
	qualityRating float64,
	isQualified bool,
) (*Supplier, error) {
	if id == "" {
		return nil, fmt.Errorf("supplier id cannot be empty")
	}
	if leadTimeWeeks < 0 {
		return nil, fmt.Errorf("lead time cannot be negative, got %g", leadTimeWeeks)
	}
	if capacityKgPerWeek <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %g", capacityKgPerWeek)
	}
	if !costPerKg.IsPositive() {
		return nil, fmt.Errorf("cost per kg must be positive, got %s", costPerKg)
	}
	if qualityRating < 0 || qualityRating > 1 {
		return nil, fmt.Errorf("quality rating must be between 0 and 1, got %g", qualityRating)
	}

	return &Supplier{
		ID:                id,
		Region:            region,
		LeadTimeWeeks:     leadTimeWeeks,
		CapacityKgPerWeek: capacityKgPerWeek,
		CostPerKg:         costPerKg,
		QualityRating:     qualityRating,
		IsQualified:       isQualified,
	}, nil
}

// HorizonCapacityKg returns the maximum quantity this supplier can deliver
// within the given planning horizon
func (s *Supplier) HorizonCapacityKg(horizonWeeks int) float64 {
	return s.CapacityKgPerWeek * float64(horizonWeeks)
}
