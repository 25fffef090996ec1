package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// CustomerRepository persistence port for Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
