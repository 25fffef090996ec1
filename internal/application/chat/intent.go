package chat

import (
	"regexp"
	"strings"

	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// IntentType classifies what a chat message is asking for.
type IntentType string

const (
	IntentInventory  IntentType = "inventory_query"
	IntentWarehouses IntentType = "warehouse_query"
	IntentGeneral    IntentType = "general"
	IntentUnknown    IntentType = "unknown"
)

// Intent the parsed meaning of one chat message. WarehouseName is only set
// for inventory queries and still needs fuzzy resolution against the real
// warehouse list.
type Intent struct {
	Type          IntentType
	WarehouseName string
	Confidence    float64
	OriginalQuery string
}

// Ordered: more specific phrasings first, so "show me inventory for X" wins
// over the catch-all "X inventory".
var inventoryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`show me inventory for (.+)`),
	regexp.MustCompile(`inventory for (.+)`),
	regexp.MustCompile(`what's in (.+)`),
	regexp.MustCompile(`show (.+) inventory`),
	regexp.MustCompile(`(.+) stock`),
	regexp.MustCompile(`(.+) inventory`),
}

var warehousePatterns = []*regexp.Regexp{
	regexp.MustCompile(`show me warehouses`),
	regexp.MustCompile(`list warehouses`),
	regexp.MustCompile(`warehouse list`),
	regexp.MustCompile(`all warehouses`),
}

// ParseIntent classifies a chat message. Matching is case-insensitive; the
// captured warehouse name is trimmed but otherwise left as the user typed it.
func ParseIntent(message string) Intent {
	query := strings.ToLower(strings.TrimSpace(message))

	for _, p := range inventoryPatterns {
		if m := p.FindStringSubmatch(query); m != nil {
			return Intent{
				Type:          IntentInventory,
				WarehouseName: strings.TrimSpace(m[1]),
				Confidence:    0.9,
				OriginalQuery: message,
			}
		}
	}

	for _, p := range warehousePatterns {
		if p.MatchString(query) {
			return Intent{
				Type:          IntentWarehouses,
				Confidence:    0.8,
				OriginalQuery: message,
			}
		}
	}

	if strings.Contains(query, "help") || strings.Contains(query, "what can you do") {
		return Intent{
			Type:          IntentGeneral,
			Confidence:    0.7,
			OriginalQuery: message,
		}
	}

	return Intent{
		Type:          IntentUnknown,
		Confidence:    0.1,
		OriginalQuery: message,
	}
}

// MatchWarehouse resolves a user-typed warehouse name against the real list:
// exact name first, then containment in either direction, then the first
// word of the query. Returns nil when nothing matches.
func MatchWarehouse(warehouses []*entity.Warehouse, name string) *entity.Warehouse {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil
	}

	for _, w := range warehouses {
		if strings.ToLower(w.Name) == query {
			return w
		}
	}

	for _, w := range warehouses {
		lower := strings.ToLower(w.Name)
		if strings.Contains(lower, query) || strings.Contains(query, lower) {
			return w
		}
	}

	firstWord := strings.SplitN(query, " ", 2)[0]
	for _, w := range warehouses {
		if strings.Contains(strings.ToLower(w.Name), firstWord) {
			return w
		}
	}

	return nil
}
