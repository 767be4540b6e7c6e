package shopping

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"budget-meal-planner/internal/planner"
	"budget-meal-planner/internal/pricing"
	"budget-meal-planner/internal/recipe"
)

// Unit synonyms collapsed before consolidation, so "1 cup milk" and
// "2 cups milk" land on the same grocery item.
var unitSynonyms = map[string]string{
	"cup":        "cups",
	"cups":       "cups",
	"tbsp":       "tbsp",
	"tablespoon": "tbsp",
	"tsp":        "tsp",
	"teaspoon":   "tsp",
	"lb":         "lbs",
	"lbs":        "lbs",
	"pound":      "lbs",
	"oz":         "oz",
	"ounce":      "oz",
	"whole":      "whole",
	"each":       "whole",
	"can":        "cans",
	"cans":       "cans",
	"jar":        "jars",
	"jars":       "jars",
	"container":  "containers",
	"containers": "containers",
}

// NormalizeUnit collapses unit synonyms to a canonical form.
func NormalizeUnit(unit string) string {
	lower := strings.ToLower(unit)
	if canonical, ok := unitSynonyms[lower]; ok {
		return canonical
	}
	return lower
}

func itemKey(ing recipe.Ingredient) string {
	return strings.ToLower(strings.TrimSpace(ing.Name)) + "|" + NormalizeUnit(ing.Unit)
}

// Pricer resolves a price for one shopping-list item.
type Pricer interface {
	Price(ctx context.Context, ing recipe.Ingredient, loc pricing.Location) pricing.Quote
}

// Generator builds shopping lists from scaled meal plans.
type Generator struct {
	pricer Pricer
}

// NewGenerator creates a shopping list generator backed by the given pricer.
func NewGenerator(pricer Pricer) *Generator {
	return &Generator{pricer: pricer}
}

// Consolidate merges every meal's ingredients into unique grocery items.
// Amounts merge by maximum, not sum: the shopper buys one package sized for
// the largest single need and the surplus covers the smaller ones.
func Consolidate(meals []planner.ScaledMeal) []ConsolidatedItem {
	index := make(map[string]int)
	items := make([]ConsolidatedItem, 0)

	for _, meal := range meals {
		for _, ing := range meal.Ingredients {
			key := itemKey(ing)
			if i, ok := index[key]; ok {
				if ing.Amount > items[i].Amount {
					items[i].Amount = ing.Amount
					items[i].StoreUnit = ing.StoreUnit
				}
				items[i].UsedIn = append(items[i].UsedIn, meal.Name)
				continue
			}

			index[key] = len(items)
			items = append(items, ConsolidatedItem{
				Name:      ing.Name,
				Amount:    ing.Amount,
				Unit:      NormalizeUnit(ing.Unit),
				StoreUnit: ing.StoreUnit,
				Category:  normalizeCategory(ing.Category),
				UsedIn:    []string{meal.Name},
			})
		}
	}

	return items
}

func normalizeCategory(category string) string {
	if _, ok := CategoryNames[category]; ok {
		return category
	}
	return recipe.CategoryPantry
}

// Categorize buckets items by category and orders each bucket for a
// sensible walk through the store.
func Categorize(items []ConsolidatedItem) map[string][]ConsolidatedItem {
	categories := make(map[string][]ConsolidatedItem)
	for _, item := range items {
		categories[item.Category] = append(categories[item.Category], item)
	}
	for key := range categories {
		sortByShoppingFlow(key, categories[key])
	}
	return categories
}

// Preferred pickup order per aisle; everything else sorts alphabetically
// after the known items.
var shoppingFlow = map[string][]string{
	"produce": {"onion", "garlic", "potato", "carrot", "celery", "bell pepper", "banana"},
	"meat":    {"ground beef", "chicken breast", "chicken thigh", "tuna"},
	"dairy":   {"milk", "eggs", "butter", "cheese"},
	"pantry":  {"oil", "flour", "rice", "pasta", "beans", "sauce", "broth", "sugar"},
	"frozen":  {"vegetables", "peas"},
	"spices":  {"salt", "pepper", "garlic powder", "onion powder"},
}

func sortByShoppingFlow(category string, items []ConsolidatedItem) {
	order := shoppingFlow[category]
	rank := func(name string) int {
		lower := strings.ToLower(name)
		for i, probe := range order {
			if strings.Contains(lower, probe) {
				return i
			}
		}
		return -1
	}

	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := rank(items[i].Name), rank(items[j].Name)
		if ri != -1 && rj != -1 {
			return ri < rj
		}
		if ri != -1 {
			return true
		}
		if rj != -1 {
			return false
		}
		return items[i].Name < items[j].Name
	})
}

// Generate builds the complete priced shopping list for a plan.
func (g *Generator) Generate(ctx context.Context, meals []planner.ScaledMeal, loc pricing.Location) (ShoppingList, error) {
	items := Consolidate(meals)
	categories := Categorize(items)

	for key, bucket := range categories {
		for i := range bucket {
			item := &bucket[i]

			quote := g.pricer.Price(ctx, recipe.Ingredient{
				Name:       item.Name,
				Amount:     item.Amount,
				Unit:       item.Unit,
				Category:   item.Category,
				SearchTerm: item.Name,
			}, loc)
			item.Price = quote.Price
			item.Source = quote.Source

			item.Bulk = checkBulkDeal(item.Name, item.Amount, item.Price)

			if item.StoreUnit == "" {
				item.StoreUnit = GroceryFormat(item.Name, item.Amount, item.Unit, item.Category)
			}
		}
		categories[key] = bucket

		select {
		case <-ctx.Done():
			return ShoppingList{}, ctx.Err()
		default:
		}
	}

	list := ShoppingList{
		Categories:  categories,
		MealCount:   len(meals),
		Location:    locationLabel(loc),
		GeneratedAt: time.Now().UTC(),
	}
	list.Totals = calculateTotals(categories)
	return list, nil
}

func locationLabel(loc pricing.Location) string {
	if loc.ZIP == "" {
		return ""
	}
	if loc.Region == "National" {
		return "National Average"
	}
	return fmt.Sprintf("%s, %s", loc.City, loc.State)
}

func calculateTotals(categories map[string][]ConsolidatedItem) Totals {
	totals := Totals{CategoryBreakdown: make(map[string]CategoryTotal)}

	for key, items := range categories {
		var categoryTotal, categorySavings float64
		for _, item := range items {
			categoryTotal += item.Price
			if item.Bulk.Available {
				categorySavings += item.Bulk.Savings
			}
		}

		totals.CategoryBreakdown[key] = CategoryTotal{
			Name:      CategoryNames[key],
			Total:     round2(categoryTotal),
			ItemCount: len(items),
			Savings:   round2(categorySavings),
		}
		totals.TotalCost += categoryTotal
		totals.TotalItems += len(items)
		totals.PotentialSavings += categorySavings
	}

	totals.TotalCost = round2(totals.TotalCost)
	totals.PotentialSavings = round2(totals.PotentialSavings)
	if totals.TotalItems > 0 {
		totals.AveragePerItem = round2(totals.TotalCost / float64(totals.TotalItems))
	}
	return totals
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
