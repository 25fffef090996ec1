package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// ShipmentRepository persistence port for Shipment (DIP).
// Reads join carrier and warehouse summaries.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	ListByOrder(orderID string) ([]*entity.Shipment, error)
	ListRecent(limit int) ([]*entity.Shipment, error)
}
