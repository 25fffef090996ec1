package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// CreateOrderRequest input to place an order.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// OrderItemRequest one requested line item.
type OrderItemRequest struct {
	SKU string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"min=1"`
}

// OrderItemResponse one priced line item.
type OrderItemResponse struct {
	SKU        string          `json:"sku"`
	Qty        int             `json:"qty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse output shape of an order with its line items.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Customer    *CustomerResponse   `json:"customer,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// OrderSummaryResponse one row of the orders listing.
type OrderSummaryResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	ItemsCount    int             `json:"items_count"`
	ShipmentCount int             `json:"shipment_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderListResponse paginated orders listing, newest first.
type OrderListResponse struct {
	Items []OrderSummaryResponse `json:"items"`
	Page  PageRequest            `json:"page"`
}

// NewOrderItemResponse maps a stored line item.
func NewOrderItemResponse(it entity.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		SKU:        it.SKU,
		Qty:        it.Qty,
		UnitPrice:  it.UnitPrice,
		TotalPrice: it.TotalPrice,
	}
}
