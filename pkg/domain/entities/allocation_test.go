package entities

import (
	"math"
	"testing"
)

func TestNewAllocation_RoundsToOneDecimal(t *testing.T) {
	alloc := NewAllocation(map[SupplierID]float64{
		"Titan-US": 1538.4615,
		"Titan-JP": 2307.6923,
		"Titan-AU": 1153.8461,
	})

	expected := map[SupplierID]float64{
		"Titan-US": 1538.5,
		"Titan-JP": 2307.7,
		"Titan-AU": 1153.8,
	}
	for id, want := range expected {
		if got := alloc.QuantityFor(id); got != want {
			t.Errorf("Expected %s to get %g kg, got %g", id, want, got)
		}
	}
	if math.Abs(alloc.TotalKg()-5000.0) > 1e-9 {
		t.Errorf("Expected total 5000 kg, got %g", alloc.TotalKg())
	}
}

func TestNewAllocation_DropsNegligibleEntries(t *testing.T) {
	alloc := NewAllocation(map[SupplierID]float64{
		"big":      100.0,
		"tiny":     0.3,
		"boundary": 0.5,
		"zero":     0.0,
	})

	if len(alloc) != 1 {
		t.Fatalf("Expected only one surviving entry, got %d: %v", len(alloc), alloc)
	}
	if _, ok := alloc["tiny"]; ok {
		t.Error("Negligible entry should be omitted, not zeroed")
	}
	if _, ok := alloc["boundary"]; ok {
		t.Error("Entry at the 0.5 kg threshold should be omitted")
	}
	if alloc.QuantityFor("big") != 100.0 {
		t.Errorf("Expected big entry to survive with 100 kg, got %g", alloc.QuantityFor("big"))
	}
}

func TestAllocation_TotalKgEmpty(t *testing.T) {
	if total := (Allocation{}).TotalKg(); total != 0 {
		t.Errorf("Expected empty allocation total 0, got %g", total)
	}
}
