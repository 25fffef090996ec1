package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest input to create a warehouse.
type CreateWarehouseRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country"`
	TotalSpace int    `json:"total_space"`
	UsedSpace  int    `json:"used_space"`
	Status     string `json:"status"`
}

// UpdateWarehouseRequest input to update a warehouse. Nil fields are untouched.
type UpdateWarehouseRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	ZipCode    *string `json:"zip_code"`
	Country    *string `json:"country"`
	TotalSpace *int    `json:"total_space"`
	UsedSpace  *int    `json:"used_space"`
	Status     *string `json:"status"`
}

// WarehouseResponse output shape of a warehouse.
type WarehouseResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zip_code"`
	Country        string          `json:"country"`
	TotalSpace     int             `json:"total_space"`
	UsedSpace      int             `json:"used_space"`
	UtilizationPct decimal.Decimal `json:"utilization_pct"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WarehouseListResponse list of warehouses.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
