package memory

import "testing"

func TestSupplierRepository_PreservesCatalogOrder(t *testing.T) {
	repo := NewSupplierRepository(5)
	if err := repo.LoadSuppliers(DefaultSuppliers()); err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}

	all, err := repo.GetAllSuppliers()
	if err != nil {
		t.Fatalf("GetAllSuppliers failed: %v", err)
	}

	expected := []string{"Titan-US", "Titan-JP", "Titan-RU", "Titan-CN", "Titan-AU"}
	if len(all) != len(expected) {
		t.Fatalf("Expected %d suppliers, got %d", len(expected), len(all))
	}
	for i, id := range expected {
		if string(all[i].ID) != id {
			t.Errorf("Expected supplier %d to be %s, got %s", i, id, all[i].ID)
		}
	}
}

func TestSupplierRepository_GetSupplier(t *testing.T) {
	repo := NewSupplierRepository(5)
	if err := repo.LoadSuppliers(DefaultSuppliers()); err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}

	s, err := repo.GetSupplier("Titan-CN")
	if err != nil {
		t.Fatalf("Expected Titan-CN to exist: %v", err)
	}
	if s.IsQualified {
		t.Error("Expected Titan-CN to be non-qualified in the default catalog")
	}

	if _, err := repo.GetSupplier("Titan-XX"); err == nil {
		t.Error("Expected error for unknown supplier")
	}
}

func TestSupplierRepository_RejectsDuplicateIDs(t *testing.T) {
	repo := NewSupplierRepository(2)
	suppliers := DefaultSuppliers()

	if err := repo.AddSupplier(*suppliers[0]); err != nil {
		t.Fatalf("First add failed: %v", err)
	}
	err := repo.AddSupplier(*suppliers[0])
	if err == nil {
		t.Fatal("Expected duplicate supplier id to be rejected")
	}
	if err.Error() != "duplicate supplier id: Titan-US" {
		t.Errorf("Unexpected error message: %v", err)
	}
}
