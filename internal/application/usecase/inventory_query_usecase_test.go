package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueshipsync/shipsync-api/internal/application/dto"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
	"github.com/blueshipsync/shipsync-api/pkg/logger"
)

const warehouseChicago = "wh-chicago"

// fakeWarehouseRepo minimal in-memory WarehouseRepository.
type fakeWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.byID[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return f.byID[id], nil
}
func (f *fakeWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range f.byID {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, nil
}
func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error { f.byID[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.byID {
		out = append(out, w)
	}
	return out, nil
}
func (f *fakeWarehouseRepo) Delete(id string) error { delete(f.byID, id); return nil }

// fakeInventoryRepo in-memory InventoryRepository applying the same filter
// and ordering semantics as the SQL adapter.
type fakeInventoryRepo struct {
	records []*entity.InventoryRecord
	failErr error // when set, every method fails
}

func (f *fakeInventoryRepo) matching(warehouseID string, fl repository.InventoryFilter) []*entity.InventoryRecord {
	var out []*entity.InventoryRecord
	for _, r := range f.records {
		if r.WarehouseID != warehouseID {
			continue
		}
		if s := strings.ToLower(strings.TrimSpace(fl.Search)); s != "" {
			hit := strings.Contains(strings.ToLower(r.Product.SKU), s) ||
				strings.Contains(strings.ToLower(r.Product.Name), s) ||
				strings.Contains(strings.ToLower(r.BinLocation), s)
			if !hit {
				continue
			}
		}
		if fl.Status != "" && fl.Status != "all" && r.Status != fl.Status {
			continue
		}
		if fl.Category != "" && fl.Category != "all" && r.Product.Category != fl.Category {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Product.Name != out[j].Product.Name {
			return out[i].Product.Name < out[j].Product.Name
		}
		if out[i].BinLocation != out[j].BinLocation {
			return out[i].BinLocation < out[j].BinLocation
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (f *fakeInventoryRepo) Count(_ context.Context, warehouseID string, fl repository.InventoryFilter) (int, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	return len(f.matching(warehouseID, fl)), nil
}

func (f *fakeInventoryRepo) Search(_ context.Context, warehouseID string, fl repository.InventoryFilter) ([]*entity.InventoryRecord, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	all := f.matching(warehouseID, fl)
	if fl.Offset >= len(all) {
		return nil, nil
	}
	end := fl.Offset + fl.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[fl.Offset:end], nil
}

func (f *fakeInventoryRepo) Categories(_ context.Context, warehouseID string) ([]string, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	seen := map[string]bool{}
	out := []string{}
	for _, r := range f.matching(warehouseID, repository.InventoryFilter{}) {
		c := r.Product.Category
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeInventoryRepo) Stats(_ context.Context, warehouseID string) (*entity.InventoryStats, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	stats := &entity.InventoryStats{StatusCounts: map[string]int{}, TotalValue: decimal.Zero}
	for _, r := range f.matching(warehouseID, repository.InventoryFilter{}) {
		stats.TotalItems++
		stats.TotalUnits += r.Quantity
		if r.Quantity < entity.LowStockThreshold {
			stats.LowStockItems++
		}
		stats.StatusCounts[r.Status]++
		stats.TotalValue = stats.TotalValue.Add(
			r.Product.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity))))
	}
	return stats, nil
}

func record(id, warehouseID, name, sku, category, bin string, qty int, status, price string) *entity.InventoryRecord {
	return &entity.InventoryRecord{
		ID:          id,
		WarehouseID: warehouseID,
		ProductID:   "prod-" + id,
		Quantity:    qty,
		BinLocation: bin,
		Status:      status,
		Product: &entity.Product{
			ID:        "prod-" + id,
			SKU:       sku,
			Name:      name,
			Category:  category,
			UnitPrice: decimal.RequireFromString(price),
		},
	}
}

func newQueryUC(inv *fakeInventoryRepo) (*usecase.InventoryQueryUseCase, *fakeWarehouseRepo) {
	warehouses := &fakeWarehouseRepo{byID: map[string]*entity.Warehouse{
		warehouseChicago: {ID: warehouseChicago, Name: "Chicago DC", City: "Chicago", State: "IL"},
	}}
	return usecase.NewInventoryQueryUseCase(warehouses, inv, logger.Nop(), 5), warehouses
}

// thirtyRecords builds 30 records in Chicago with deterministic names so the
// expected global ordering is rec-00 .. rec-29 by product name.
func thirtyRecords() *fakeInventoryRepo {
	inv := &fakeInventoryRepo{}
	for i := 0; i < 30; i++ {
		id := fmt.Sprintf("rec-%02d", i)
		name := fmt.Sprintf("Product %02d", i)
		sku := fmt.Sprintf("SKU-%02d", i)
		bin := fmt.Sprintf("A%d1", i%9+1)
		inv.records = append(inv.records,
			record(id, warehouseChicago, name, sku, "Electronics", bin, 100, entity.InventoryStatusAvailable, "10.00"))
	}
	return inv
}

func TestQuery_PaginationMetadata(t *testing.T) {
	uc, _ := newQueryUC(thirtyRecords())

	page1 := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Page: 1, Limit: 20})
	assert.Len(t, page1.Items, 20)
	assert.Equal(t, 30, page1.TotalCount)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 1, page1.CurrentPage)
	assert.True(t, page1.HasNextPage)
	assert.False(t, page1.HasPreviousPage)

	page2 := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Page: 2, Limit: 20})
	assert.Len(t, page2.Items, 10)
	assert.Equal(t, 2, page2.CurrentPage)
	assert.False(t, page2.HasNextPage)
	assert.True(t, page2.HasPreviousPage)
}

func TestQuery_PagePastTheEndIsEmptyButKeepsMetadata(t *testing.T) {
	uc, _ := newQueryUC(thirtyRecords())

	page3 := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Page: 3, Limit: 20})
	assert.Empty(t, page3.Items)
	assert.Equal(t, 30, page3.TotalCount)
	assert.Equal(t, 2, page3.TotalPages)
	assert.Equal(t, 3, page3.CurrentPage)
	assert.False(t, page3.HasNextPage)
	assert.True(t, page3.HasPreviousPage)
}

func TestQuery_ClampsPageAndLimit(t *testing.T) {
	uc, _ := newQueryUC(thirtyRecords())

	out := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Page: -3, Limit: 0})
	assert.Equal(t, 1, out.CurrentPage)
	assert.Len(t, out.Items, entity.DefaultPageSize)

	out = uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Page: 1, Limit: 500})
	// limit capped at 100; only 30 records exist
	assert.Len(t, out.Items, 30)
	assert.Equal(t, 1, out.TotalPages)
}

func TestQuery_OrderingIsStableAcrossPages(t *testing.T) {
	uc, _ := newQueryUC(thirtyRecords())

	var names []string
	for page := 1; page <= 3; page++ {
		out := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Page: page, Limit: 12})
		for _, item := range out.Items {
			names = append(names, item.Product.Name)
		}
	}
	require.Len(t, names, 30)
	assert.True(t, sort.StringsAreSorted(names), "product names must be ascending across pages")
}

func TestQuery_FiltersAreConjunctive(t *testing.T) {
	inv := &fakeInventoryRepo{records: []*entity.InventoryRecord{
		record("r1", warehouseChicago, "iPhone 15 128GB", "ELC-IPHONE15-128", "Electronics", "A11", 30, entity.InventoryStatusAvailable, "799.99"),
		record("r2", warehouseChicago, "iPhone 15 128GB", "ELC-IPHONE15-128", "Electronics", "B22", 80, entity.InventoryStatusReserved, "799.99"),
		record("r3", warehouseChicago, "Nike Air Max 270", "APP-NIKE-AIR-MAX", "Apparel", "C33", 60, entity.InventoryStatusAvailable, "150.00"),
		record("r4", "wh-other", "iPhone 15 128GB", "ELC-IPHONE15-128", "Electronics", "A11", 10, entity.InventoryStatusAvailable, "799.99"),
	}}
	uc, _ := newQueryUC(inv)

	// Case-insensitive search over product name.
	out := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Search: "IPHONE"})
	assert.Equal(t, 2, out.TotalCount)

	// Search AND status must both hold.
	out = uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Search: "iphone", Status: entity.InventoryStatusReserved})
	require.Equal(t, 1, out.TotalCount)
	assert.Equal(t, "B22", out.Items[0].BinLocation)

	// Search matches bin locations too.
	out = uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Search: "c33"})
	require.Equal(t, 1, out.TotalCount)
	assert.Equal(t, "Nike Air Max 270", out.Items[0].Product.Name)

	// "all" sentinel disables a filter.
	out = uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Status: "all", Category: "all"})
	assert.Equal(t, 3, out.TotalCount)

	// Records from other warehouses never leak in.
	out = uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{})
	assert.Equal(t, 3, out.TotalCount)
}

func TestQuery_EmptyWarehouseIDYieldsZeroPage(t *testing.T) {
	uc, _ := newQueryUC(thirtyRecords())

	out := uc.Query(context.Background(), "", dto.InventoryFilterRequest{Page: 2})
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
	assert.Zero(t, out.TotalCount)
	assert.Equal(t, 1, out.CurrentPage)
	assert.False(t, out.HasNextPage)
	assert.False(t, out.HasPreviousPage)
}

func TestQuery_StorageFailureYieldsZeroPageNotError(t *testing.T) {
	inv := thirtyRecords()
	inv.failErr = errors.New("connection refused")
	uc, _ := newQueryUC(inv)

	// The zero page is returned whatever page was asked for: no stale
	// pagination metadata may suggest there is anything to navigate to.
	for _, page := range []int{1, 3} {
		out := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Page: page})
		assert.NotNil(t, out.Items)
		assert.Empty(t, out.Items)
		assert.Zero(t, out.TotalCount)
		assert.Zero(t, out.TotalPages)
		assert.Equal(t, 1, out.CurrentPage)
		assert.False(t, out.HasNextPage)
		assert.False(t, out.HasPreviousPage, "page %d", page)
	}
}

func TestQuery_LowStockFlagUsesStrictThreshold(t *testing.T) {
	inv := &fakeInventoryRepo{records: []*entity.InventoryRecord{
		record("r1", warehouseChicago, "A", "SKU-A", "", "A11", entity.LowStockThreshold-1, entity.InventoryStatusAvailable, "1.00"),
		record("r2", warehouseChicago, "B", "SKU-B", "", "B11", entity.LowStockThreshold, entity.InventoryStatusAvailable, "1.00"),
	}}
	uc, _ := newQueryUC(inv)

	out := uc.Query(context.Background(), warehouseChicago, dto.InventoryFilterRequest{})
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].LowStock, "quantity 49 is low stock")
	assert.False(t, out.Items[1].LowStock, "quantity 50 is not low stock")
}

func TestStats_IgnoresFiltersAndStaysExact(t *testing.T) {
	inv := &fakeInventoryRepo{}
	// 1200 records at $0.10 each, quantity 3: total value must be exactly $360.00.
	for i := 0; i < 1200; i++ {
		inv.records = append(inv.records, record(
			fmt.Sprintf("r%04d", i), warehouseChicago,
			fmt.Sprintf("P%04d", i), fmt.Sprintf("S%04d", i),
			"Electronics", "A11", 3, entity.InventoryStatusAvailable, "0.10"))
	}
	uc, _ := newQueryUC(inv)

	stats := uc.Stats(context.Background(), warehouseChicago)
	assert.Equal(t, 1200, stats.TotalItems)
	assert.Equal(t, 3600, stats.TotalUnits)
	assert.Equal(t, 1200, stats.LowStockItems)
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("360.00")),
		"total value must be exact, got %s", stats.TotalValue)
}

func TestStats_FailureYieldsZeroValues(t *testing.T) {
	inv := thirtyRecords()
	inv.failErr = errors.New("timeout")
	uc, _ := newQueryUC(inv)

	stats := uc.Stats(context.Background(), warehouseChicago)
	assert.Zero(t, stats.TotalItems)
	assert.NotNil(t, stats.StatusCounts)
	assert.True(t, stats.TotalValue.IsZero())
}

func TestCategories_SortedAndNeverNil(t *testing.T) {
	inv := &fakeInventoryRepo{records: []*entity.InventoryRecord{
		record("r1", warehouseChicago, "A", "S1", "Electronics", "A11", 5, entity.InventoryStatusAvailable, "1.00"),
		record("r2", warehouseChicago, "B", "S2", "Apparel", "B11", 5, entity.InventoryStatusAvailable, "1.00"),
		record("r3", warehouseChicago, "C", "S3", "", "C11", 5, entity.InventoryStatusAvailable, "1.00"),
	}}
	uc, _ := newQueryUC(inv)

	categories := uc.Categories(context.Background(), warehouseChicago)
	assert.Equal(t, []string{"Apparel", "Electronics"}, categories)

	inv.failErr = errors.New("boom")
	categories = uc.Categories(context.Background(), warehouseChicago)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestOverview_CombinesAllSections(t *testing.T) {
	uc, _ := newQueryUC(thirtyRecords())

	out, err := uc.Overview(context.Background(), warehouseChicago, dto.InventoryFilterRequest{Limit: 20})
	require.NoError(t, err)
	require.NotNil(t, out.Warehouse)
	assert.Equal(t, "Chicago DC", out.Warehouse.Name)
	assert.Len(t, out.Inventory.Items, 20)
	assert.Equal(t, 30, out.Inventory.TotalCount)
	assert.Equal(t, []string{"Electronics"}, out.Categories)
	assert.Equal(t, 30, out.Stats.TotalItems)
}

func TestOverview_UnknownWarehouseReturnsNotFound(t *testing.T) {
	uc, _ := newQueryUC(thirtyRecords())

	out, err := uc.Overview(context.Background(), "wh-missing", dto.InventoryFilterRequest{})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
