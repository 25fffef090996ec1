package chat

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// unitPrinter groups digits in unit counts ("45,000").
var unitPrinter = message.NewPrinter(language.English)

// InventoryLine one inventory row as shown in a chat reply.
type InventoryLine struct {
	SKU         string
	Name        string
	Quantity    int
	BinLocation string
	Status      string
	Category    string
}

// InventorySummary the data behind a formatted inventory reply.
type InventorySummary struct {
	WarehouseName string
	TotalItems    int
	TotalUnits    int
	LowStockItems int
	Items         []InventoryLine
}

const helpReply = "I can help you check warehouse inventory and operations. Try:\n" +
	"• \"Show me inventory for Chicago DC\"\n" +
	"• \"List warehouses\"\n" +
	"• \"[warehouse name] stock\""

// FormatInventory renders the canned markdown reply for one warehouse's
// inventory: summary counts, the item list grouped by category when more
// than one category is present, and a low-stock alert.
func FormatInventory(data InventorySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 **%s Inventory**\n\n", data.WarehouseName)

	b.WriteString("**Summary:**\n")
	fmt.Fprintf(&b, "• Total Items: %d\n", data.TotalItems)
	fmt.Fprintf(&b, "• Total Units: %s\n", unitPrinter.Sprintf("%d", data.TotalUnits))
	fmt.Fprintf(&b, "• Low Stock Items: %d\n\n", data.LowStockItems)

	if len(data.Items) == 0 {
		b.WriteString("This warehouse is currently empty.")
		return b.String()
	}

	b.WriteString("**Inventory Details:**\n")

	categories := distinctCategories(data.Items)
	if len(categories) > 1 {
		for _, category := range categories {
			fmt.Fprintf(&b, "\n**%s:**\n", category)
			for _, item := range data.Items {
				if item.Category == category {
					writeItemLine(&b, item)
				}
			}
		}
	} else {
		for _, item := range data.Items {
			writeItemLine(&b, item)
		}
	}

	if data.LowStockItems > 0 {
		fmt.Fprintf(&b, "\n⚠️ **Alert:** %d items are running low on stock!", data.LowStockItems)
	}

	return b.String()
}

// FormatWarehouses renders the warehouse overview reply: one block per
// warehouse with location, utilization and status.
func FormatWarehouses(warehouses []*entity.Warehouse) string {
	var b strings.Builder
	b.WriteString("🏭 **Warehouse Overview**\n\n")

	if len(warehouses) == 0 {
		b.WriteString("No warehouses found.")
		return b.String()
	}

	for _, w := range warehouses {
		fmt.Fprintf(&b, "**%s**\n", w.Name)
		fmt.Fprintf(&b, "• Location: %s, %s\n", w.City, w.State)
		fmt.Fprintf(&b, "• Utilization: %s%%\n", w.UtilizationPct.StringFixed(1))
		fmt.Fprintf(&b, "• Status: %s\n\n", w.Status)
	}

	b.WriteString("💡 **Tip:** Ask \"Show me inventory for [warehouse name]\" to see detailed inventory.")
	return b.String()
}

// FormatWarehouseNotFound the reply when fuzzy matching resolves nothing.
func FormatWarehouseNotFound(name string) string {
	return fmt.Sprintf("I couldn't find a warehouse named %q. Ask \"List warehouses\" to see what's available.", name)
}

func writeItemLine(b *strings.Builder, item InventoryLine) {
	fmt.Fprintf(b, "• %s (%s): %d units in bin %s - %s\n",
		item.Name, item.SKU, item.Quantity, item.BinLocation, item.Status)
}

// distinctCategories preserves first-seen order and skips empty categories.
func distinctCategories(items []InventoryLine) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		if item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		out = append(out, item.Category)
	}
	return out
}
