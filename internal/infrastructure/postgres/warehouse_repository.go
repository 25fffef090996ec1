package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, name, address, city, state, zip_code, country,
		total_space, used_space, utilization_pct, status, created_at, updated_at`

// WarehouseRepo implements WarehouseRepository over PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository builds the warehouse persistence adapter. Pass pool or tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persists a new warehouse.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, w.Address, w.City, w.State, w.ZipCode, w.Country,
		w.TotalSpace, w.UsedSpace, w.UtilizationPct, w.Status, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert warehouse: duplicate: %w", err)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID fetches a warehouse by ID. Returns (nil, nil) when not found.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get warehouse")
}

// GetByName fetches a warehouse by exact name. Returns (nil, nil) when not found.
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get warehouse by name")
}

// Update updates an existing warehouse.
func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, address = $3, city = $4, state = $5, zip_code = $6, country = $7,
		    total_space = $8, used_space = $9, utilization_pct = $10, status = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, w.Address, w.City, w.State, w.ZipCode, w.Country,
		w.TotalSpace, w.UsedSpace, w.UtilizationPct, w.Status, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// List returns all warehouses sorted by name.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Address, &w.City, &w.State, &w.ZipCode, &w.Country,
			&w.TotalSpace, &w.UsedSpace, &w.UtilizationPct, &w.Status, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete removes a warehouse by ID.
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) scanOne(row pgx.Row, op string) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.Name, &w.Address, &w.City, &w.State, &w.ZipCode, &w.Country,
		&w.TotalSpace, &w.UsedSpace, &w.UtilizationPct, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &w, nil
}
