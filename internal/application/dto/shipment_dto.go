package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// CreateShipmentRequest input to dispatch a shipment for an order.
type CreateShipmentRequest struct {
	OrderID     string             `json:"order_id" validate:"required"`
	WarehouseID string             `json:"warehouse_id" validate:"required"`
	CarrierID   string             `json:"carrier_id" validate:"required"`
	Weight      float64            `json:"weight" validate:"min=0"`
	Dimensions  *entity.Dimensions `json:"dimensions"`
}

// ShipmentResponse output shape of a shipment with its carrier and origin.
type ShipmentResponse struct {
	ID                    string           `json:"id"`
	OrderID               string           `json:"order_id"`
	TrackingNumber        string           `json:"tracking_number"`
	Status                string           `json:"status"`
	Weight                float64          `json:"weight"`
	ShippingCost          decimal.Decimal  `json:"shipping_cost"`
	LabelURL              string           `json:"label_url,omitempty"`
	EstimatedDeliveryDate *time.Time       `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time       `json:"actual_delivery_date,omitempty"`
	Carrier               *CarrierResponse `json:"carrier,omitempty"`
	WarehouseName         string           `json:"warehouse_name,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
}

// ShipmentListResponse recent shipments, newest first.
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
}
