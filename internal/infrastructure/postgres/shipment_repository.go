package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
	"github.com/blueshipsync/shipsync-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

const shipmentSelect = `
		SELECT s.id, s.order_id, s.warehouse_id, s.carrier_id, s.tracking_number, s.status,
		       s.weight, s.dimensions, s.shipping_cost, s.label_url,
		       s.estimated_delivery_date, s.actual_delivery_date, s.created_at, s.updated_at,
		       ca.id, ca.name, ca.service_level,
		       w.id, w.name, w.city, w.state
		FROM shipments s
		JOIN carriers   ca ON ca.id = s.carrier_id
		JOIN warehouses w  ON w.id  = s.warehouse_id`

// ShipmentRepo implements ShipmentRepository over PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository builds the shipment persistence adapter. Pass pool or tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persists a new shipment.
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	dims, err := marshalDimensions(s.Dimensions)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO shipments (id, order_id, warehouse_id, carrier_id, tracking_number, status,
			weight, dimensions, shipping_cost, label_url,
			estimated_delivery_date, actual_delivery_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		s.ID, s.OrderID, s.WarehouseID, s.CarrierID, s.TrackingNumber, s.Status,
		s.Weight, dims, s.ShippingCost, s.LabelURL,
		s.EstimatedDeliveryDate, s.ActualDeliveryDate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID fetches a shipment with carrier and warehouse summaries joined.
// Returns (nil, nil) when not found.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	row := r.q.QueryRow(context.Background(), shipmentSelect+` WHERE s.id = $1`, id)
	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// ListByOrder returns the shipments of an order, newest first.
func (r *ShipmentRepo) ListByOrder(orderID string) ([]*entity.Shipment, error) {
	query := shipmentSelect + ` WHERE s.order_id = $1 ORDER BY s.created_at DESC`
	return r.list(query, orderID)
}

// ListRecent returns the most recent shipments across all orders.
func (r *ShipmentRepo) ListRecent(limit int) ([]*entity.Shipment, error) {
	query := shipmentSelect + ` ORDER BY s.created_at DESC LIMIT $1`
	return r.list(query, limit)
}

func (r *ShipmentRepo) list(query string, args ...any) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	var ca entity.Carrier
	var w entity.Warehouse
	var dims []byte
	err := row.Scan(
		&s.ID, &s.OrderID, &s.WarehouseID, &s.CarrierID, &s.TrackingNumber, &s.Status,
		&s.Weight, &dims, &s.ShippingCost, &s.LabelURL,
		&s.EstimatedDeliveryDate, &s.ActualDeliveryDate, &s.CreatedAt, &s.UpdatedAt,
		&ca.ID, &ca.Name, &ca.ServiceLevel,
		&w.ID, &w.Name, &w.City, &w.State,
	)
	if err != nil {
		return nil, err
	}
	if s.Dimensions, err = unmarshalDimensions(dims); err != nil {
		return nil, err
	}
	s.Carrier = &ca
	s.Warehouse = &w
	return &s, nil
}
