package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse statuses.
const (
	WarehouseStatusActive      = "ACTIVE"
	WarehouseStatusInactive    = "INACTIVE"
	WarehouseStatusMaintenance = "MAINTENANCE"
)

// Warehouse represents a distribution center or fulfillment facility.
// UtilizationPct is UsedSpace / TotalSpace expressed as a percentage.
type Warehouse struct {
	ID             string
	Name           string
	Address        string
	City           string
	State          string
	ZipCode        string
	Country        string
	TotalSpace     int // sq ft
	UsedSpace      int
	UtilizationPct decimal.Decimal
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
