package repositories

import "github.com/mfields/supplyplan/pkg/domain/entities"

// SupplierRepository provides access to supplier master data
type SupplierRepository interface {
	GetSupplier(id entities.SupplierID) (*entities.Supplier, error)
	GetAllSuppliers() ([]*entities.Supplier, error)
	LoadSuppliers(suppliers []*entities.Supplier) error
}
