package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dimensions physical measurements of a product or package, in centimeters.
// Stored as JSONB but always read through this typed struct.
type Dimensions struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Product represents a sellable item identified by a unique SKU.
type Product struct {
	ID          string
	SKU         string // unique product identifier
	Name        string
	Description string
	Category    string
	Weight      float64 // lbs
	Dimensions  *Dimensions
	UnitPrice   decimal.Decimal
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
