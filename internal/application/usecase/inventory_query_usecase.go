package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
	"github.com/blueshipsync/shipsync-api/pkg/logger"
)

// InventoryQueryUseCase read side of the warehouse detail page: the paginated
// inventory table, the category filter options and the summary cards.
//
// The table and card reads never fail the page: any storage error is logged
// and resolved to an empty, well-formed response so the dashboard keeps
// rendering.
type InventoryQueryUseCase struct {
	warehouses repository.WarehouseRepository
	inventory  repository.InventoryRepository
	log        *logger.Logger
	timeout    time.Duration
}

// NewInventoryQueryUseCase builds the use case. timeoutSeconds bounds every
// storage read; reads that exceed it resolve to empty results.
func NewInventoryQueryUseCase(
	warehouses repository.WarehouseRepository,
	inventory repository.InventoryRepository,
	log *logger.Logger,
	timeoutSeconds int,
) *InventoryQueryUseCase {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 5
	}
	return &InventoryQueryUseCase{
		warehouses: warehouses,
		inventory:  inventory,
		log:        log,
		timeout:    time.Duration(timeoutSeconds) * time.Second,
	}
}

// Query returns one page of a warehouse's inventory. Filters are conjunctive:
// the text search (SKU, product name or bin location, case-insensitive) ANDs
// with the status and category filters; "all" or empty disables a filter.
// Page numbers are 1-based and clamped; a page past the end is empty but
// keeps its metadata. Never returns an error.
func (uc *InventoryQueryUseCase) Query(ctx context.Context, warehouseID string, in dto.InventoryFilterRequest) dto.PaginatedInventoryResponse {
	in.Normalize()
	if warehouseID == "" {
		return emptyInventoryPage()
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	f := repository.InventoryFilter{
		Search:   in.Search,
		Status:   in.Status,
		Category: in.Category,
		Limit:    in.Limit,
		Offset:   (in.Page - 1) * in.Limit,
	}

	total, err := uc.inventory.Count(ctx, warehouseID, f)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Msg("inventory count failed")
		return emptyInventoryPage()
	}

	records, err := uc.inventory.Search(ctx, warehouseID, f)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Msg("inventory search failed")
		return emptyInventoryPage()
	}

	items := make([]dto.InventoryItemResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toInventoryItemResponse(r))
	}

	totalPages := (total + in.Limit - 1) / in.Limit

	return dto.PaginatedInventoryResponse{
		Items:           items,
		TotalCount:      total,
		TotalPages:      totalPages,
		CurrentPage:     in.Page,
		HasNextPage:     in.Page < totalPages,
		HasPreviousPage: in.Page > 1,
	}
}

// Categories returns the distinct product categories stocked in the
// warehouse, sorted ascending. Resolves to an empty list on failure.
func (uc *InventoryQueryUseCase) Categories(ctx context.Context, warehouseID string) []string {
	if warehouseID == "" {
		return []string{}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	categories, err := uc.inventory.Categories(ctx, warehouseID)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Msg("inventory categories failed")
		return []string{}
	}
	return categories
}

// Stats returns the summary aggregates for a warehouse, always computed over
// the full unfiltered record set. Resolves to zero values on failure.
func (uc *InventoryQueryUseCase) Stats(ctx context.Context, warehouseID string) dto.InventoryStatsResponse {
	if warehouseID == "" {
		return emptyInventoryStats()
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	stats, err := uc.inventory.Stats(ctx, warehouseID)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouseID).Msg("inventory stats failed")
		return emptyInventoryStats()
	}
	return toInventoryStatsResponse(stats)
}

// Overview loads everything the warehouse detail page needs in one call:
// warehouse metadata, the requested inventory page, the category options and
// the summary stats, fetched concurrently. Returns domain.ErrNotFound when
// the warehouse does not exist; the concurrent reads themselves degrade to
// empty results rather than failing the page.
func (uc *InventoryQueryUseCase) Overview(ctx context.Context, warehouseID string, in dto.InventoryFilterRequest) (*dto.WarehouseOverviewResponse, error) {
	warehouse, err := uc.warehouses.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.WarehouseOverviewResponse{
		Warehouse: toWarehouseResponse(warehouse),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Inventory = uc.Query(gctx, warehouseID, in)
		return nil
	})
	g.Go(func() error {
		out.Categories = uc.Categories(gctx, warehouseID)
		return nil
	})
	g.Go(func() error {
		out.Stats = uc.Stats(gctx, warehouseID)
		return nil
	})
	_ = g.Wait() // the reads swallow their own errors

	return out, nil
}

// emptyInventoryPage is the zero-value page returned whenever a read cannot
// be served: first page, no items, both navigation flags false, regardless of
// which page was asked for.
func emptyInventoryPage() dto.PaginatedInventoryResponse {
	return dto.PaginatedInventoryResponse{
		Items:       []dto.InventoryItemResponse{},
		CurrentPage: 1,
	}
}

func emptyInventoryStats() dto.InventoryStatsResponse {
	return dto.InventoryStatsResponse{
		StatusCounts: map[string]int{},
	}
}

func toInventoryItemResponse(r *entity.InventoryRecord) dto.InventoryItemResponse {
	out := dto.InventoryItemResponse{
		ID:            r.ID,
		Quantity:      r.Quantity,
		BinLocation:   r.BinLocation,
		Status:        r.Status,
		LowStock:      r.LowStock(),
		LastCountedAt: r.LastCountedAt,
	}
	if r.Product != nil {
		out.Product = *toProductResponse(r.Product)
	}
	return out
}

func toInventoryStatsResponse(s *entity.InventoryStats) dto.InventoryStatsResponse {
	counts := s.StatusCounts
	if counts == nil {
		counts = map[string]int{}
	}
	return dto.InventoryStatsResponse{
		TotalItems:    s.TotalItems,
		TotalUnits:    s.TotalUnits,
		LowStockItems: s.LowStockItems,
		StatusCounts:  counts,
		TotalValue:    s.TotalValue,
	}
}
