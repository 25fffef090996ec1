package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo read-only queries over inventory records joined with products.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the inventory read adapter. Pass pool or tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserts an inventory record. Not part of the read port; used by the
// seed command and admin tooling.
func (r *InventoryRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	const query = `
		INSERT INTO inventory (id, warehouse_id, product_id, quantity, bin_location,
		                       status, last_counted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.WarehouseID, rec.ProductID, rec.Quantity, rec.BinLocation,
		rec.Status, rec.LastCountedAt, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("inventory.Create: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("inventory.Create: %w", err)
	}
	return nil
}

// buildPredicate translates a filter into a WHERE clause over the joined
// inventory/products row. The sentinel "all" (or empty) disables the status
// and category constraints; search is a case-insensitive OR over SKU,
// product name and bin location.
func buildPredicate(warehouseID string, f repository.InventoryFilter) (string, []any) {
	conds := []string{"i.warehouse_id = $1"}
	args := []any{warehouseID}

	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(p.sku ILIKE $%d OR p.name ILIKE $%d OR i.bin_location ILIKE $%d)", n, n, n))
	}
	if f.Status != "" && f.Status != "all" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if f.Category != "" && f.Category != "all" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("p.category = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

// Count returns the number of records matching the filter, ignoring pagination.
func (r *InventoryRepo) Count(ctx context.Context, warehouseID string, f repository.InventoryFilter) (int, error) {
	where, args := buildPredicate(warehouseID, f)
	query := `
		SELECT COUNT(*)
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE ` + where
	var count int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("inventory.Count: %w", err)
	}
	return count, nil
}

// Search returns one page of matching records with product attributes joined,
// ordered by product name then bin location then record id so pagination is
// deterministic across calls.
func (r *InventoryRepo) Search(ctx context.Context, warehouseID string, f repository.InventoryFilter) ([]*entity.InventoryRecord, error) {
	where, args := buildPredicate(warehouseID, f)
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT i.id, i.warehouse_id, i.product_id, i.quantity, i.bin_location,
		       i.status, i.last_counted_at, i.created_at, i.updated_at,
		       p.id, p.sku, p.name, p.description, p.category, p.weight,
		       p.dimensions, p.unit_price, p.image_url, p.created_at, p.updated_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE %s
		ORDER BY p.name ASC, i.bin_location ASC, i.id ASC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inventory.Search: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		var p entity.Product
		var dims []byte
		if err := rows.Scan(
			&rec.ID, &rec.WarehouseID, &rec.ProductID, &rec.Quantity, &rec.BinLocation,
			&rec.Status, &rec.LastCountedAt, &rec.CreatedAt, &rec.UpdatedAt,
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.Weight,
			&dims, &p.UnitPrice, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("inventory.Search scan: %w", err)
		}
		if p.Dimensions, err = unmarshalDimensions(dims); err != nil {
			return nil, err
		}
		rec.Product = &p
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Categories returns the distinct non-empty product categories stocked in
// the warehouse, sorted ascending.
func (r *InventoryRepo) Categories(ctx context.Context, warehouseID string) ([]string, error) {
	const query = `
		SELECT DISTINCT p.category
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.warehouse_id = $1 AND p.category <> ''
		ORDER BY p.category ASC`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("inventory.Categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("inventory.Categories scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Stats aggregates the full unfiltered record set for the warehouse.
// total_value is SUM(quantity * unit_price) computed in NUMERIC and scanned
// into decimal, so summing thousands of records stays exact to the cent.
func (r *InventoryRepo) Stats(ctx context.Context, warehouseID string) (*entity.InventoryStats, error) {
	const aggQuery = `
		SELECT
		    COUNT(*)                                            AS total_items,
		    COALESCE(SUM(i.quantity), 0)                        AS total_units,
		    COUNT(*) FILTER (WHERE i.quantity < $2)             AS low_stock_items,
		    COALESCE(SUM(i.quantity * p.unit_price), 0)         AS total_value
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.warehouse_id = $1`

	stats := &entity.InventoryStats{StatusCounts: map[string]int{}}
	err := r.q.QueryRow(ctx, aggQuery, warehouseID, entity.LowStockThreshold).Scan(
		&stats.TotalItems, &stats.TotalUnits, &stats.LowStockItems, &stats.TotalValue,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory.Stats: %w", err)
	}

	const statusQuery = `
		SELECT status, COUNT(*)
		FROM inventory
		WHERE warehouse_id = $1
		GROUP BY status`
	rows, err := r.q.Query(ctx, statusQuery, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("inventory.Stats status counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("inventory.Stats status scan: %w", err)
		}
		stats.StatusCounts[status] = count
	}
	return stats, rows.Err()
}
