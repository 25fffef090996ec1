package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory statuses.
const (
	InventoryStatusAvailable  = "AVAILABLE"
	InventoryStatusReserved   = "RESERVED"
	InventoryStatusDamaged    = "DAMAGED"
	InventoryStatusQuarantine = "QUARANTINE"
	InventoryStatusExpired    = "EXPIRED"
)

// LowStockThreshold marks a record as low stock when its quantity falls
// strictly below this number of units. Quantity 49 is low stock; 50 is not.
const LowStockThreshold = 50

// Pagination bounds for inventory listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// InventoryRecord is the stock of one product in one warehouse: one record
// per (warehouse, product) pair. Quantity is never negative. BinLocation is
// a zone+row+shelf code identifying the physical slot (e.g. "B32").
type InventoryRecord struct {
	ID            string
	WarehouseID   string
	ProductID     string
	Quantity      int
	BinLocation   string
	Status        string
	LastCountedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Product attributes joined on read paths.
	Product *Product
}

// LowStock reports whether the record is below the low-stock threshold.
func (r *InventoryRecord) LowStock() bool {
	return r.Quantity < LowStockThreshold
}

// InventoryStats summary aggregates for one warehouse, always computed over
// the full unfiltered record set.
type InventoryStats struct {
	TotalItems    int
	TotalUnits    int
	LowStockItems int
	StatusCounts  map[string]int
	TotalValue    decimal.Decimal // sum of quantity * unit price, exact
}
