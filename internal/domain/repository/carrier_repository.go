package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// CarrierRepository persistence port for Carrier (DIP).
type CarrierRepository interface {
	Create(carrier *entity.Carrier) error
	GetByID(id string) (*entity.Carrier, error)
	List() ([]*entity.Carrier, error)
}
