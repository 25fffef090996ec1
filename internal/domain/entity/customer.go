package entity

import "time"

// Address postal address used for shipping and billing.
// Stored as JSONB but always read through this typed struct.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Customer represents a buyer placing orders.
type Customer struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	ShippingAddress  *Address
	BillingAddress   *Address
	PreferredCarrier string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
