package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment statuses.
const (
	ShipmentStatusPending   = "PENDING"
	ShipmentStatusPacked    = "PACKED"
	ShipmentStatusShipped   = "SHIPPED"
	ShipmentStatusInTransit = "IN_TRANSIT"
	ShipmentStatusDelivered = "DELIVERED"
	ShipmentStatusReturned  = "RETURNED"
)

// Shipment represents one package dispatched from a warehouse for an order.
type Shipment struct {
	ID                    string
	OrderID               string
	WarehouseID           string
	CarrierID             string
	TrackingNumber        string
	Status                string
	Weight                float64 // lbs
	Dimensions            *Dimensions
	ShippingCost          decimal.Decimal
	LabelURL              string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined on read paths.
	Carrier   *Carrier
	Warehouse *Warehouse
}
