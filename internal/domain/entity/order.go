package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderItem one line of an order. Stored as JSONB but validated into this
// typed struct at the storage boundary.
type OrderItem struct {
	SKU        string          `json:"sku"`
	Qty        int             `json:"qty"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Order represents a customer order with its line items.
type Order struct {
	ID          string
	CustomerID  string
	OrderNumber string
	Status      string
	Items       []OrderItem
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Customer joined on read paths.
	Customer *Customer
}
