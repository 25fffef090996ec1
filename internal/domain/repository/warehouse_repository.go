package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// WarehouseRepository persistence port for Warehouse (DIP).
// GetByID returns (nil, nil) when the warehouse does not exist.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List() ([]*entity.Warehouse, error)
	Delete(id string) error
}
