package shopping

import "time"

// CategoryOrder is the aisle walk order used for display and export.
var CategoryOrder = []string{"produce", "meat", "dairy", "pantry", "frozen", "spices"}

// CategoryNames maps category keys to shopper-facing section names.
var CategoryNames = map[string]string{
	"produce": "Fresh Produce",
	"meat":    "Meat & Seafood",
	"dairy":   "Dairy & Eggs",
	"pantry":  "Pantry Staples",
	"frozen":  "Frozen Foods",
	"spices":  "Spices & Seasonings",
}

// BulkOption describes a bulk-size purchase worth considering for an item.
type BulkOption struct {
	Available   bool    `json:"available"`
	BulkSize    float64 `json:"bulkSize,omitempty"`
	BulkPrice   float64 `json:"bulkPrice,omitempty"`
	Savings     float64 `json:"savings,omitempty"`
	Recommended bool    `json:"recommended,omitempty"`
}

// ConsolidatedItem is one grocery item covering every meal that needs it.
type ConsolidatedItem struct {
	Name      string     `json:"name"`
	Amount    float64    `json:"amount"`
	Unit      string     `json:"unit"`
	StoreUnit string     `json:"storeUnit"`
	Category  string     `json:"category"`
	Price     float64    `json:"price"`
	Source    string     `json:"source,omitempty"`
	UsedIn    []string   `json:"usedIn"`
	Bulk      BulkOption `json:"bulk"`
}

// CategoryTotal summarizes one category's share of the list.
type CategoryTotal struct {
	Name      string  `json:"name"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
	Savings   float64 `json:"savings"`
}

// Totals aggregates the whole shopping list.
type Totals struct {
	TotalCost         float64                  `json:"totalCost"`
	TotalItems        int                      `json:"totalItems"`
	AveragePerItem    float64                  `json:"averagePerItem"`
	PotentialSavings  float64                  `json:"potentialSavings"`
	CategoryBreakdown map[string]CategoryTotal `json:"categoryBreakdown"`
}

// ShoppingList is the consolidated, categorized, priced grocery list for a
// meal plan. It is always rebuilt from the current plan, never patched.
type ShoppingList struct {
	ID          string                        `json:"id,omitempty"`
	Categories  map[string][]ConsolidatedItem `json:"categories"`
	Totals      Totals                        `json:"totals"`
	MealCount   int                           `json:"mealCount"`
	Location    string                        `json:"location,omitempty"`
	GeneratedAt time.Time                     `json:"generatedAt"`
}
