package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

var _ repository.CarrierRepository = (*CarrierRepo)(nil)

const carrierColumns = `id, name, service_level, estimated_days, base_rate, per_pound_rate,
		created_at, updated_at`

// CarrierRepo implements CarrierRepository over PostgreSQL.
type CarrierRepo struct {
	q Querier
}

// NewCarrierRepository builds the carrier persistence adapter. Pass pool or tx (Querier).
func NewCarrierRepository(q Querier) *CarrierRepo {
	return &CarrierRepo{q: q}
}

// Create persists a new carrier.
func (r *CarrierRepo) Create(c *entity.Carrier) error {
	query := `
		INSERT INTO carriers (` + carrierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.ServiceLevel, c.EstimatedDays, c.BaseRate, c.PerPoundRate,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert carrier: %w", err)
	}
	return nil
}

// GetByID fetches a carrier by ID. Returns (nil, nil) when not found.
func (r *CarrierRepo) GetByID(id string) (*entity.Carrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM carriers WHERE id = $1`
	var c entity.Carrier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.ServiceLevel, &c.EstimatedDays, &c.BaseRate, &c.PerPoundRate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carrier: %w", err)
	}
	return &c, nil
}

// List returns all carriers sorted by name.
func (r *CarrierRepo) List() ([]*entity.Carrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM carriers ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list carriers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Carrier
	for rows.Next() {
		var c entity.Carrier
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ServiceLevel, &c.EstimatedDays, &c.BaseRate, &c.PerPoundRate,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan carrier: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
