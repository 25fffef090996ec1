package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// InventoryFilterRequest query parameters for the paginated inventory listing.
// Status and Category accept the sentinel "all" (or empty) meaning no filter.
// Page is 1-based.
type InventoryFilterRequest struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Category string `query:"category"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// Normalize clamps the pagination parameters: page < 1 becomes 1, limit
// defaults to the standard page size and is capped.
func (f *InventoryFilterRequest) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = entity.DefaultPageSize
	}
	if f.Limit > entity.MaxPageSize {
		f.Limit = entity.MaxPageSize
	}
}

// InventoryItemResponse one row of the inventory table: the stock record
// with its product attributes flattened in.
type InventoryItemResponse struct {
	ID            string             `json:"id"`
	Quantity      int                `json:"quantity"`
	BinLocation   string             `json:"bin_location"`
	Status        string             `json:"status"`
	LowStock      bool               `json:"low_stock"`
	LastCountedAt *time.Time         `json:"last_counted_at,omitempty"`
	Product       ProductResponse    `json:"product"`
}

// PaginatedInventoryResponse one page of inventory plus page metadata.
// This is always well-formed: on any internal failure the zero-value page
// is returned (empty items, zero counts) rather than an error.
type PaginatedInventoryResponse struct {
	Items           []InventoryItemResponse `json:"items"`
	TotalCount      int                     `json:"total_count"`
	TotalPages      int                     `json:"total_pages"`
	CurrentPage     int                     `json:"current_page"`
	HasNextPage     bool                    `json:"has_next_page"`
	HasPreviousPage bool                    `json:"has_previous_page"`
}

// InventoryStatsResponse summary cards for a warehouse, computed over the
// full unfiltered record set.
type InventoryStatsResponse struct {
	TotalItems    int             `json:"total_items"`
	TotalUnits    int             `json:"total_units"`
	LowStockItems int             `json:"low_stock_items"`
	StatusCounts  map[string]int  `json:"status_counts"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// WarehouseOverviewResponse everything one warehouse detail page needs,
// fetched in parallel: metadata, first inventory page, filter categories
// and summary stats.
type WarehouseOverviewResponse struct {
	Warehouse  *WarehouseResponse         `json:"warehouse"`
	Inventory  PaginatedInventoryResponse `json:"inventory"`
	Categories []string                   `json:"categories"`
	Stats      InventoryStatsResponse     `json:"stats"`
}
