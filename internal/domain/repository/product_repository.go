package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// ProductRepository persistence port for Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
