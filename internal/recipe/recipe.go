package recipe

import (
	"fmt"
	"strings"
)

// Grocery categories an ingredient can belong to. Anything unrecognized is
// treated as pantry.
const (
	CategoryProduce = "produce"
	CategoryMeat    = "meat"
	CategoryDairy   = "dairy"
	CategoryPantry  = "pantry"
	CategoryFrozen  = "frozen"
	CategorySpices  = "spices"
)

// Ingredient is a single recipe ingredient with its grocery metadata.
type Ingredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	// StoreUnit is a precomputed human-readable purchase quantity, e.g.
	// "5lb bag". When empty it is derived at shopping-list time.
	StoreUnit string `json:"storeUnit,omitempty"`
	// OriginalAmount is set when a recipe has been scaled, preserving the
	// catalog amount for traceability.
	OriginalAmount float64 `json:"originalAmount,omitempty"`
	// SearchTerm is the retailer search string used for price lookups.
	SearchTerm string `json:"searchTerm,omitempty"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Recipe is an immutable catalog or AI-generated recipe. Scaling produces a
// derived copy and never mutates the original.
type Recipe struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Servings          int          `json:"servings"`
	PrepTime          int          `json:"prepTime"`
	CookTime          int          `json:"cookTime"`
	Difficulty        string       `json:"difficulty"`
	Ingredients       []Ingredient `json:"ingredients"`
	Instructions      []string     `json:"instructions"`
	Nutrition         Nutrition    `json:"nutrition"`
	Tags              []string     `json:"tags"`
	Allergens         []string     `json:"allergens"`
	CommonIngredients []string     `json:"commonIngredients,omitempty"`
}

// HasTag reports whether the recipe declares the given tag.
func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Defaults applied to AI-generated recipes where the model omitted a field.
const (
	defaultPrepTime = 15
	defaultCookTime = 30
)

var defaultNutrition = Nutrition{Calories: 400, Protein: 25, Carbs: 45, Fat: 12, Fiber: 8}

var validCategories = map[string]bool{
	CategoryProduce: true,
	CategoryMeat:    true,
	CategoryDairy:   true,
	CategoryPantry:  true,
	CategoryFrozen:  true,
	CategorySpices:  true,
}

// Normalize applies documented defaults to every optional field and validates
// the result. It is called once at ingestion; downstream code can rely on a
// fully populated recipe. fallbackServings is used when the source omitted a
// serving count (the requesting family size for AI recipes).
func Normalize(r *Recipe, fallbackServings int) error {
	if r.Name == "" {
		return fmt.Errorf("recipe has no name")
	}
	if r.Servings <= 0 {
		r.Servings = fallbackServings
	}
	if r.Servings <= 0 {
		return fmt.Errorf("recipe %q has no usable serving count", r.Name)
	}
	if r.Description == "" {
		r.Description = "Budget-friendly family recipe"
	}
	if r.PrepTime <= 0 {
		r.PrepTime = defaultPrepTime
	}
	if r.CookTime <= 0 {
		r.CookTime = defaultCookTime
	}
	switch r.Difficulty {
	case "Easy", "Medium", "Hard":
	default:
		r.Difficulty = "Easy"
	}
	if r.Nutrition == (Nutrition{}) {
		r.Nutrition = defaultNutrition
	}
	if len(r.Instructions) == 0 {
		r.Instructions = []string{"Follow basic cooking instructions"}
	}

	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %q has no ingredients", r.Name)
	}
	for i := range r.Ingredients {
		ing := &r.Ingredients[i]
		if ing.Name == "" {
			return fmt.Errorf("recipe %q: ingredient %d has no name", r.Name, i)
		}
		if ing.Amount <= 0 {
			return fmt.Errorf("recipe %q: ingredient %q has non-positive amount", r.Name, ing.Name)
		}
		if ing.Unit == "" {
			ing.Unit = "item"
		}
		if !validCategories[strings.ToLower(ing.Category)] {
			ing.Category = CategoryPantry
		} else {
			ing.Category = strings.ToLower(ing.Category)
		}
		if ing.SearchTerm == "" {
			ing.SearchTerm = ing.Name
		}
	}
	return nil
}
