package memory

import (
	"fmt"

	"github.com/mfields/supplyplan/pkg/domain/entities"
	"github.com/mfields/supplyplan/pkg/domain/repositories"
)

// SupplierRepository provides in-memory supplier storage. Insertion order is
// preserved so every computation sees the catalog in a stable order.
type SupplierRepository struct {
	suppliers []entities.Supplier
	index     map[entities.SupplierID]int
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository(expectedSuppliers int) *SupplierRepository {
	return &SupplierRepository{
		suppliers: make([]entities.Supplier, 0, expectedSuppliers),
		index:     make(map[entities.SupplierID]int, expectedSuppliers),
	}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// LoadSuppliers loads suppliers into the repository
func (r *SupplierRepository) LoadSuppliers(suppliers []*entities.Supplier) error {
	for _, s := range suppliers {
		if err := r.AddSupplier(*s); err != nil {
			return err
		}
	}
	return nil
}

// AddSupplier adds a supplier to the repository
func (r *SupplierRepository) AddSupplier(s entities.Supplier) error {
	if _, exists := r.index[s.ID]; exists {
		return fmt.Errorf("duplicate supplier id: %s", s.ID)
	}
	r.index[s.ID] = len(r.suppliers)
	r.suppliers = append(r.suppliers, s)
	return nil
}

// GetSupplier returns the supplier record for an id
func (r *SupplierRepository) GetSupplier(id entities.SupplierID) (*entities.Supplier, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, fmt.Errorf("supplier not found: %s", id)
	}
	return &r.suppliers[i], nil
}

// GetAllSuppliers returns all suppliers in catalog order
func (r *SupplierRepository) GetAllSuppliers() ([]*entities.Supplier, error) {
	suppliers := make([]*entities.Supplier, 0, len(r.suppliers))
	for i := range r.suppliers {
		suppliers = append(suppliers, &r.suppliers[i])
	}
	return suppliers, nil
}
