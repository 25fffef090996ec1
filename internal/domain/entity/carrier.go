package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Carrier represents a shipping carrier and one of its service levels
// (e.g. FedEx Ground, DHL Express).
type Carrier struct {
	ID            string
	Name          string
	ServiceLevel  string
	EstimatedDays int
	BaseRate      decimal.Decimal
	PerPoundRate  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EstimateCost returns the shipping cost for a package weight in pounds:
// base rate plus per-pound rate times weight, rounded to the cent.
func (c *Carrier) EstimateCost(weight decimal.Decimal) decimal.Decimal {
	return c.BaseRate.Add(c.PerPoundRate.Mul(weight)).Round(2)
}
