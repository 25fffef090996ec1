package dto

import (
	"time"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// CreateCustomerRequest input to create a customer.
type CreateCustomerRequest struct {
	Name             string          `json:"name" validate:"required"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	ShippingAddress  *entity.Address `json:"shipping_address"`
	BillingAddress   *entity.Address `json:"billing_address"`
	PreferredCarrier string          `json:"preferred_carrier"`
}

// CustomerResponse output shape of a customer.
type CustomerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	ShippingAddress  *entity.Address `json:"shipping_address,omitempty"`
	BillingAddress   *entity.Address `json:"billing_address,omitempty"`
	PreferredCarrier string          `json:"preferred_carrier,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
