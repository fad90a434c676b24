package entities

import "math"

// NegligibleKg is the threshold below which an allocation entry is omitted
// entirely rather than carried as a dead entry for downstream consumers to
// iterate over.
const NegligibleKg = 0.5

// Allocation maps supplier IDs to allocated quantity in kg
type Allocation map[SupplierID]float64

// NewAllocation finalizes raw per-supplier quantities: each entry is rounded
// to one decimal and negligible entries are dropped.
func NewAllocation(raw map[SupplierID]float64) Allocation {
	alloc := make(Allocation, len(raw))
	for id, kg := range raw {
		rounded := math.Round(kg*10) / 10
		if rounded > NegligibleKg {
			alloc[id] = rounded
		}
	}
	return alloc
}

// TotalKg returns the total allocated quantity
func (a Allocation) TotalKg() float64 {
	var total float64
	for _, kg := range a {
		total += kg
	}
	return total
}

// QuantityFor returns the quantity allocated to a supplier, zero if unused
func (a Allocation) QuantityFor(id SupplierID) float64 {
	return a[id]
}
