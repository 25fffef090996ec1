package repository

import "github.com/blueshipsync/shipsync-api/internal/domain/entity"

// OrderSummary one row of the orders listing: order header plus the
// customer name and related counts, newest first.
type OrderSummary struct {
	Order         entity.Order
	CustomerName  string
	CustomerEmail string
	ShipmentCount int
	ItemsCount    int
}

// OrderRepository persistence port for Order (DIP).
// GetByID joins the customer; shipments are fetched separately.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListSummaries(limit, offset int) ([]*OrderSummary, error)
}
