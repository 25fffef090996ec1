package repository

import (
	"context"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// InventoryFilter narrows an inventory read within one warehouse.
// Search matches SKU, product name and bin location case-insensitively
// with OR semantics. Status and Category are exact matches; empty or
// "all" means no constraint.
type InventoryFilter struct {
	Search   string
	Status   string
	Category string
	Limit    int
	Offset   int
}

// InventoryRepository read-side persistence port for inventory records.
// All reads join product attributes. These are blocking queries, so every
// method takes a context (the caller imposes the timeout).
type InventoryRepository interface {
	// Count returns how many records match the filter, ignoring Limit/Offset.
	Count(ctx context.Context, warehouseID string, f InventoryFilter) (int, error)
	// Search returns the matching page ordered by product name then bin
	// location, both ascending. Ordering must be stable across calls.
	Search(ctx context.Context, warehouseID string, f InventoryFilter) ([]*entity.InventoryRecord, error)
	// Categories returns the distinct non-empty product categories present
	// in the warehouse, sorted ascending.
	Categories(ctx context.Context, warehouseID string) ([]string, error)
	// Stats aggregates over the full unfiltered set for the warehouse.
	Stats(ctx context.Context, warehouseID string) (*entity.InventoryStats, error)
}
