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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository over PostgreSQL.
// Line items live in a JSONB column but are validated into []entity.OrderItem
// here, at the storage boundary, so read sites get typed data.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the order persistence adapter. Pass pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persists a new order with its line items.
func (r *OrderRepo) Create(o *entity.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, customer_id, order_number, status, items, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		o.ID, o.CustomerID, o.OrderNumber, o.Status, items, o.TotalAmount, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID fetches an order with its customer joined. Returns (nil, nil) when not found.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	const query = `
		SELECT o.id, o.customer_id, o.order_number, o.status, o.items, o.total_amount,
		       o.created_at, o.updated_at,
		       c.id, c.name, c.email, c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`
	var o entity.Order
	var c entity.Customer
	var items []byte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.OrderNumber, &o.Status, &items, &o.TotalAmount,
		&o.CreatedAt, &o.UpdatedAt,
		&c.ID, &c.Name, &c.Email, &c.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o.Items, err = unmarshalOrderItems(items); err != nil {
		return nil, err
	}
	o.Customer = &c
	return &o, nil
}

// ListSummaries returns order headers newest first, with customer name and
// shipment count joined in a single query.
func (r *OrderRepo) ListSummaries(limit, offset int) ([]*repository.OrderSummary, error) {
	const query = `
		SELECT o.id, o.order_number, o.status, o.items, o.total_amount, o.created_at,
		       c.name, c.email,
		       COUNT(s.id) AS shipment_count
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN shipments s ON s.order_id = o.id
		GROUP BY o.id, c.name, c.email
		ORDER BY o.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*repository.OrderSummary
	for rows.Next() {
		var s repository.OrderSummary
		var items []byte
		if err := rows.Scan(
			&s.Order.ID, &s.Order.OrderNumber, &s.Order.Status, &items, &s.Order.TotalAmount,
			&s.Order.CreatedAt,
			&s.CustomerName, &s.CustomerEmail,
			&s.ShipmentCount,
		); err != nil {
			return nil, fmt.Errorf("scan order summary: %w", err)
		}
		if s.Order.Items, err = unmarshalOrderItems(items); err != nil {
			return nil, err
		}
		s.ItemsCount = len(s.Order.Items)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// unmarshalOrderItems validates the JSONB line items into typed records.
// A malformed blob is a data error, not something to pass through silently.
func unmarshalOrderItems(raw []byte) ([]entity.OrderItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []entity.OrderItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	for i, it := range items {
		if it.SKU == "" || it.Qty <= 0 {
			return nil, fmt.Errorf("order item %d: missing sku or non-positive qty", i)
		}
	}
	return items, nil
}
