package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/blueshipsync/shipsync-api/internal/domain"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, phone, shipping_address, billing_address,
		preferred_carrier, created_at, updated_at`

// CustomerRepo implements CustomerRepository over PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the customer persistence adapter. Pass pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer. Addresses are stored as JSONB from the typed structs.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	shipping, err := marshalAddress(c.ShippingAddress)
	if err != nil {
		return err
	}
	billing, err := marshalAddress(c.BillingAddress)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, shipping, billing,
		c.PreferredCarrier, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by ID. Returns (nil, nil) when not found.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c entity.Customer
	var shipping, billing []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &shipping, &billing,
		&c.PreferredCarrier, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if c.ShippingAddress, err = unmarshalAddress(shipping); err != nil {
		return nil, err
	}
	if c.BillingAddress, err = unmarshalAddress(billing); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns customers sorted by name with pagination.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var shipping, billing []byte
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &shipping, &billing,
			&c.PreferredCarrier, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		if c.ShippingAddress, err = unmarshalAddress(shipping); err != nil {
			return nil, err
		}
		if c.BillingAddress, err = unmarshalAddress(billing); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func marshalAddress(a *entity.Address) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal address: %w", err)
	}
	return raw, nil
}

func unmarshalAddress(raw []byte) (*entity.Address, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var a entity.Address
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}
	return &a, nil
}
