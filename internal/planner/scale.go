package planner

import (
	"math"

	"budget-meal-planner/internal/recipe"
)

// ScaledMeal is a selected recipe with ingredient amounts and pricing
// resized for the actual eaters.
type ScaledMeal struct {
	ScoredRecipe
	ScaledServings   int     `json:"scaledServings"`
	ScaleFactor      float64 `json:"scaleFactor"`
	OriginalServings int     `json:"originalServings"`
}

// KidPortionWeight maps a child's age to their share of an adult portion.
func KidPortionWeight(age int) float64 {
	switch {
	case age <= 5:
		return 0.5
	case age <= 10:
		return 0.7
	}
	return 0.9
}

// TotalPortions converts a household into adult-equivalent portions.
func TotalPortions(totalPeople int, kidAges []int) float64 {
	portions := float64(totalPeople - len(kidAges))
	for _, age := range kidAges {
		portions += KidPortionWeight(age)
	}
	return portions
}

// ScalePortions resizes every meal from its listed servings to the
// household's portion count. Originals are left untouched: ingredients are
// copied, each keeping its pre-scale amount for traceability.
func ScalePortions(meals []ScoredRecipe, totalPeople int, kidAges []int) []ScaledMeal {
	totalPortions := TotalPortions(totalPeople, kidAges)

	scaled := make([]ScaledMeal, 0, len(meals))
	for _, meal := range meals {
		scaleFactor := totalPortions / float64(meal.Servings)
		scaledServings := int(math.Ceil(totalPortions))

		ingredients := make([]recipe.Ingredient, len(meal.Ingredients))
		for i, ing := range meal.Ingredients {
			ing.OriginalAmount = ing.Amount
			ing.Amount = round2(ing.Amount * scaleFactor)
			ingredients[i] = ing
		}

		m := ScaledMeal{
			ScoredRecipe:     meal,
			ScaledServings:   scaledServings,
			ScaleFactor:      scaleFactor,
			OriginalServings: meal.Servings,
		}
		m.Ingredients = ingredients
		m.Pricing.TotalCost = round2(meal.Pricing.TotalCost * scaleFactor)
		m.Pricing.CostPerServing = round2(m.Pricing.TotalCost / float64(scaledServings))

		scaled = append(scaled, m)
	}
	return scaled
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
