package chat

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

func TestFormatInventory_SingleCategory(t *testing.T) {
	reply := FormatInventory(InventorySummary{
		WarehouseName: "Chicago DC",
		TotalItems:    2,
		TotalUnits:    1500,
		LowStockItems: 0,
		Items: []InventoryLine{
			{SKU: "ELC-IPHONE15-128", Name: "iPhone 15 128GB", Quantity: 1400, BinLocation: "A11", Status: "AVAILABLE", Category: "Electronics"},
			{SKU: "ELC-SAMS24-256", Name: "Samsung Galaxy S24", Quantity: 100, BinLocation: "B22", Status: "RESERVED", Category: "Electronics"},
		},
	})

	assert.True(t, strings.HasPrefix(reply, "📦 **Chicago DC Inventory**"))
	assert.Contains(t, reply, "• Total Units: 1,500\n")
	assert.Contains(t, reply, "• iPhone 15 128GB (ELC-IPHONE15-128): 1400 units in bin A11 - AVAILABLE\n")
	// One category: no per-category headers, no low-stock alert.
	assert.NotContains(t, reply, "**Electronics:**")
	assert.NotContains(t, reply, "⚠️")
}

func TestFormatInventory_GroupsByCategoryAndAlerts(t *testing.T) {
	reply := FormatInventory(InventorySummary{
		WarehouseName: "Atlanta Crossdock",
		TotalItems:    3,
		TotalUnits:    120,
		LowStockItems: 2,
		Items: []InventoryLine{
			{SKU: "S1", Name: "iPhone 15 128GB", Quantity: 30, BinLocation: "A11", Status: "AVAILABLE", Category: "Electronics"},
			{SKU: "S2", Name: "Nike Air Max 270", Quantity: 40, BinLocation: "B22", Status: "AVAILABLE", Category: "Apparel"},
			{SKU: "S3", Name: "Samsung Galaxy S24", Quantity: 50, BinLocation: "C33", Status: "AVAILABLE", Category: "Electronics"},
		},
	})

	assert.Contains(t, reply, "**Electronics:**")
	assert.Contains(t, reply, "**Apparel:**")
	// Electronics was seen first, so its block comes first.
	assert.Less(t, strings.Index(reply, "**Electronics:**"), strings.Index(reply, "**Apparel:**"))
	// Both Electronics items land under the Electronics header.
	apparelAt := strings.Index(reply, "**Apparel:**")
	assert.Greater(t, strings.Index(reply, "Samsung Galaxy S24"), apparelAt)
	assert.Contains(t, reply, "⚠️ **Alert:** 2 items are running low on stock!")
}

func TestFormatInventory_EmptyWarehouse(t *testing.T) {
	reply := FormatInventory(InventorySummary{WarehouseName: "Chicago DC"})
	assert.Contains(t, reply, "This warehouse is currently empty.")
	assert.NotContains(t, reply, "**Inventory Details:**")
}

func TestFormatWarehouses(t *testing.T) {
	reply := FormatWarehouses([]*entity.Warehouse{
		{
			Name:           "Chicago DC",
			City:           "Chicago",
			State:          "IL",
			UtilizationPct: decimal.RequireFromString("70"),
			Status:         entity.WarehouseStatusActive,
		},
		{
			Name:           "Atlanta Crossdock",
			City:           "Atlanta",
			State:          "GA",
			UtilizationPct: decimal.RequireFromString("60.05"),
			Status:         entity.WarehouseStatusMaintenance,
		},
	})

	assert.True(t, strings.HasPrefix(reply, "🏭 **Warehouse Overview**"))
	assert.Contains(t, reply, "• Location: Chicago, IL\n")
	assert.Contains(t, reply, "• Utilization: 70.0%\n")
	assert.Contains(t, reply, "• Utilization: 60.1%\n")
	assert.Contains(t, reply, "• Status: MAINTENANCE\n")
	assert.Contains(t, reply, "💡 **Tip:**")
}

func TestFormatWarehouses_Empty(t *testing.T) {
	reply := FormatWarehouses(nil)
	assert.Contains(t, reply, "No warehouses found.")
	assert.NotContains(t, reply, "💡")
}

func TestFormatWarehouseNotFound(t *testing.T) {
	reply := FormatWarehouseNotFound("denver hub")
	assert.Contains(t, reply, `"denver hub"`)
	assert.Contains(t, reply, "List warehouses")
}

func TestFormatInventory_GroupsUnitDigits(t *testing.T) {
	cases := []struct {
		units int
		want  string
	}{
		{0, "• Total Units: 0\n"},
		{999, "• Total Units: 999\n"},
		{1000, "• Total Units: 1,000\n"},
		{1234567, "• Total Units: 1,234,567\n"},
	}
	for _, tc := range cases {
		reply := FormatInventory(InventorySummary{WarehouseName: "Chicago DC", TotalUnits: tc.units})
		assert.Contains(t, reply, tc.want)
	}
}
