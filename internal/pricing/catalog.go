package pricing

import (
	"math"
	"strings"

	"budget-meal-planner/internal/recipe"
)

type catalogEntry struct {
	Price    float64
	Unit     string
	Category string
}

// Known store prices per purchase unit. Everything else prices through the
// unknown-ingredient fallback.
var ingredientCatalog = map[string]catalogEntry{
	"banana":      {Price: 0.58, Unit: "lb", Category: recipe.CategoryProduce},
	"onion":       {Price: 1.28, Unit: "lb", Category: recipe.CategoryProduce},
	"potatoes":    {Price: 0.98, Unit: "lb", Category: recipe.CategoryProduce},
	"carrots":     {Price: 0.98, Unit: "lb", Category: recipe.CategoryProduce},
	"celery":      {Price: 1.48, Unit: "bunch", Category: recipe.CategoryProduce},
	"bell pepper": {Price: 1.28, Unit: "each", Category: recipe.CategoryProduce},
	"garlic":      {Price: 0.88, Unit: "head", Category: recipe.CategoryProduce},

	"milk":            {Price: 3.68, Unit: "gallon", Category: recipe.CategoryDairy},
	"eggs":            {Price: 2.98, Unit: "dozen", Category: recipe.CategoryDairy},
	"butter":          {Price: 4.98, Unit: "lb", Category: recipe.CategoryDairy},
	"cheddar cheese":  {Price: 3.98, Unit: "lb", Category: recipe.CategoryDairy},
	"parmesan cheese": {Price: 4.98, Unit: "container", Category: recipe.CategoryDairy},

	"ground beef":    {Price: 4.98, Unit: "lb", Category: recipe.CategoryMeat},
	"chicken breast": {Price: 3.48, Unit: "lb", Category: recipe.CategoryMeat},
	"chicken thighs": {Price: 1.98, Unit: "lb", Category: recipe.CategoryMeat},

	"rolled oats":            {Price: 2.98, Unit: "42oz", Category: recipe.CategoryPantry},
	"white rice":             {Price: 2.68, Unit: "5lb", Category: recipe.CategoryPantry},
	"all-purpose flour":      {Price: 2.98, Unit: "5lb", Category: recipe.CategoryPantry},
	"spaghetti pasta":        {Price: 1.28, Unit: "lb", Category: recipe.CategoryPantry},
	"egg noodles":            {Price: 1.48, Unit: "12oz", Category: recipe.CategoryPantry},
	"bread":                  {Price: 1.28, Unit: "loaf", Category: recipe.CategoryPantry},
	"black beans":            {Price: 0.88, Unit: "can", Category: recipe.CategoryPantry},
	"kidney beans":           {Price: 0.88, Unit: "can", Category: recipe.CategoryPantry},
	"dried lentils":          {Price: 1.68, Unit: "lb", Category: recipe.CategoryPantry},
	"diced tomatoes":         {Price: 0.98, Unit: "can", Category: recipe.CategoryPantry},
	"tomato sauce":           {Price: 0.88, Unit: "can", Category: recipe.CategoryPantry},
	"marinara sauce":         {Price: 1.48, Unit: "jar", Category: recipe.CategoryPantry},
	"tomato soup":            {Price: 1.28, Unit: "can", Category: recipe.CategoryPantry},
	"cream of mushroom soup": {Price: 1.28, Unit: "can", Category: recipe.CategoryPantry},
	"chicken broth":          {Price: 1.48, Unit: "32oz", Category: recipe.CategoryPantry},
	"vegetable broth":        {Price: 1.48, Unit: "32oz", Category: recipe.CategoryPantry},
	"tuna":                   {Price: 1.28, Unit: "can", Category: recipe.CategoryPantry},
	"olive oil":              {Price: 3.98, Unit: "16.9oz", Category: recipe.CategoryPantry},
	"vegetable oil":          {Price: 2.98, Unit: "48oz", Category: recipe.CategoryPantry},
	"sugar":                  {Price: 2.98, Unit: "4lb", Category: recipe.CategoryPantry},
	"honey":                  {Price: 3.98, Unit: "12oz", Category: recipe.CategoryPantry},
	"baking powder":          {Price: 0.98, Unit: "container", Category: recipe.CategoryPantry},
	"salt":                   {Price: 0.58, Unit: "container", Category: recipe.CategoryPantry},
	"breadcrumbs":            {Price: 1.48, Unit: "container", Category: recipe.CategoryPantry},

	"cinnamon":      {Price: 1.28, Unit: "container", Category: recipe.CategorySpices},
	"cumin":         {Price: 1.28, Unit: "container", Category: recipe.CategorySpices},
	"chili powder":  {Price: 1.28, Unit: "container", Category: recipe.CategorySpices},
	"garlic powder": {Price: 1.28, Unit: "container", Category: recipe.CategorySpices},
	"rosemary":      {Price: 1.28, Unit: "container", Category: recipe.CategorySpices},
	"thyme":         {Price: 1.28, Unit: "container", Category: recipe.CategorySpices},
	"bay leaves":    {Price: 1.28, Unit: "container", Category: recipe.CategorySpices},

	"mixed vegetables": {Price: 1.48, Unit: "12oz", Category: recipe.CategoryFrozen},
	"frozen peas":      {Price: 1.28, Unit: "12oz", Category: recipe.CategoryFrozen},
}

// Price for ingredients absent from the catalog, per requested unit.
const unknownIngredientPrice = 2.00

var volumeToCups = map[string]float64{
	"tsp":    0.021,
	"tbsp":   0.063,
	"oz":     0.125, // fluid ounces
	"cup":    1,
	"cups":   1,
	"pint":   2,
	"quart":  4,
	"gallon": 16,
}

var weightToLbs = map[string]float64{
	"oz":  0.063,
	"lb":  1,
	"lbs": 1,
}

// catalogUnitPrice converts the catalog's purchase unit into the requested
// recipe unit. Pairs without a known conversion price as if the units
// matched.
func catalogUnitPrice(e catalogEntry, amount float64, unit string) float64 {
	if e.Unit == unit {
		return e.Price * amount
	}

	isCups := unit == "cup" || unit == "cups"

	switch {
	case e.Unit == "gallon" && isCups:
		return e.Price / 16 * amount
	case e.Unit == "42oz" && isCups:
		return e.Price / 5.25 * amount
	case e.Unit == "5lb" && isCups:
		return e.Price / (5 * 2.2) * amount
	case e.Unit == "dozen" && unit == "whole":
		return e.Price / 12 * amount
	case e.Unit == "loaf" && unit == "slices":
		return e.Price / 20 * amount
	case e.Unit == "head" && unit == "cloves":
		return e.Price / 10 * amount
	case e.Unit == "bunch" && unit == "stalks":
		return e.Price / 3 * amount
	}

	if base, ok := weightToLbs[e.Unit]; ok {
		if req, ok := weightToLbs[unit]; ok {
			return e.Price / base * (req * amount)
		}
	}
	if base, ok := volumeToCups[e.Unit]; ok {
		if req, ok := volumeToCups[unit]; ok {
			return e.Price / base * (req * amount)
		}
	}

	return e.Price * amount
}

// CatalogPrice resolves an ingredient against the local price catalog,
// adjusted for the given state. The second return reports whether the
// ingredient was found; unknown ingredients still get an estimated price.
func CatalogPrice(name string, amount float64, unit, state string) (float64, bool) {
	entry, ok := ingredientCatalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return round2(unknownIngredientPrice * amount), false
	}

	price := catalogUnitPrice(entry, amount, unit)
	if state != "" {
		price *= StateAdjustment(state)
	}
	return round2(price), true
}

// ItemCost is one ingredient's share of a recipe's cost.
type ItemCost struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// RecipeCost is the catalog-derived cost of one recipe at its listed
// servings.
type RecipeCost struct {
	TotalCost      float64    `json:"totalCost"`
	CostPerServing float64    `json:"costPerServing"`
	Items          []ItemCost `json:"items"`
}

// PriceRecipe sums catalog prices for every ingredient of a recipe and
// derives the per-serving cost.
func PriceRecipe(r recipe.Recipe, state string) RecipeCost {
	var total float64
	items := make([]ItemCost, 0, len(r.Ingredients))

	for _, ing := range r.Ingredients {
		price, _ := CatalogPrice(ing.Name, ing.Amount, ing.Unit, state)
		total += price
		items = append(items, ItemCost{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Price:    price,
			Category: ing.Category,
		})
	}

	cost := RecipeCost{
		TotalCost: round2(total),
		Items:     items,
	}
	if r.Servings > 0 {
		cost.CostPerServing = round2(total / float64(r.Servings))
	}
	return cost
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
