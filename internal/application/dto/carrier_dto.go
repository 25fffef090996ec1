package dto

import (
	"github.com/shopspring/decimal"
)

// CreateCarrierRequest input to register a carrier service level.
type CreateCarrierRequest struct {
	Name          string          `json:"name" validate:"required"`
	ServiceLevel  string          `json:"service_level" validate:"required"`
	EstimatedDays int             `json:"estimated_days" validate:"min=1"`
	BaseRate      decimal.Decimal `json:"base_rate"`
	PerPoundRate  decimal.Decimal `json:"per_pound_rate"`
}

// CarrierResponse output shape of a carrier.
type CarrierResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ServiceLevel  string          `json:"service_level"`
	EstimatedDays int             `json:"estimated_days"`
	BaseRate      decimal.Decimal `json:"base_rate"`
	PerPoundRate  decimal.Decimal `json:"per_pound_rate"`
}

// QuoteRequest input to estimate shipping cost for a package.
type QuoteRequest struct {
	CarrierID string          `json:"carrier_id" validate:"required"`
	Weight    decimal.Decimal `json:"weight" validate:"required"`
}

// QuoteResponse estimated cost and transit time for one carrier.
type QuoteResponse struct {
	Carrier       CarrierResponse `json:"carrier"`
	Weight        decimal.Decimal `json:"weight"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	EstimatedDays int             `json:"estimated_days"`
}
