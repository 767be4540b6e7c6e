package planner

import (
	"sort"
	"strings"

	"budget-meal-planner/internal/pricing"
	"budget-meal-planner/internal/recipe"
)

// ScoredRecipe is a recipe annotated with its cost and selection score.
type ScoredRecipe struct {
	recipe.Recipe
	Pricing                pricing.RecipeCost `json:"pricing"`
	ScaledCost             float64            `json:"scaledCost"`
	Score                  float64            `json:"score"`
	BudgetScore            float64            `json:"budgetScore"`
	NutritionScore         float64            `json:"nutritionScore"`
	VersatilityScore       float64            `json:"versatilityScore"`
	CommonIngredientsScore float64            `json:"commonIngredientsScore"`
}

// ScoreParams carries the family context scoring runs against.
type ScoreParams struct {
	Budget      float64
	People      int
	MealsNeeded int
	State       string
}

// Pantry items that make a recipe cheap to extend into other meals.
var pantryStaples = []string{"onion", "garlic", "oil", "salt", "pepper", "flour", "rice"}

// ScoreRecipes prices and scores every recipe, returning them sorted by
// score, highest first. The sort is stable so equally scored recipes keep
// their catalog order.
func ScoreRecipes(recipes []recipe.Recipe, p ScoreParams) []ScoredRecipe {
	budgetPerMeal := p.Budget / float64(p.MealsNeeded)

	scored := make([]ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		cost := pricing.PriceRecipe(r, p.State)
		scaledCost := scaledRecipeCost(cost, r.Servings, p.People)

		budgetScore := calculateBudgetScore(scaledCost, budgetPerMeal)
		nutritionScore := calculateNutritionScore(r)
		versatilityScore := calculateVersatilityScore(r)
		commonScore := calculateCommonIngredientsScore(r)

		scored = append(scored, ScoredRecipe{
			Recipe:                 r,
			Pricing:                cost,
			ScaledCost:             scaledCost,
			Score:                  budgetScore*0.4 + nutritionScore*0.2 + versatilityScore*0.2 + commonScore*0.2,
			BudgetScore:            budgetScore,
			NutritionScore:         nutritionScore,
			VersatilityScore:       versatilityScore,
			CommonIngredientsScore: commonScore,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// scaledRecipeCost projects a recipe's cost from its listed servings onto
// the number of people eating.
func scaledRecipeCost(cost pricing.RecipeCost, servings, people int) float64 {
	return cost.TotalCost * float64(people) / float64(servings)
}

func calculateBudgetScore(cost, budgetPerMeal float64) float64 {
	switch {
	case cost <= budgetPerMeal*0.7:
		return 1.0
	case cost <= budgetPerMeal:
		return 0.8
	case cost <= budgetPerMeal*1.2:
		return 0.5
	}
	return 0.2
}

func calculateNutritionScore(r recipe.Recipe) float64 {
	score := 0.5

	switch {
	case r.Nutrition.Protein >= 20:
		score += 0.3
	case r.Nutrition.Protein >= 15:
		score += 0.2
	case r.Nutrition.Protein >= 10:
		score += 0.1
	}

	if r.Nutrition.Calories >= 300 && r.Nutrition.Calories <= 500 {
		score += 0.2
	}

	return min(score, 1.0)
}

func calculateVersatilityScore(r recipe.Recipe) float64 {
	score := 0.5

	if r.HasTag("kid-friendly") {
		score += 0.3
	}
	if r.Difficulty == "Easy" {
		score += 0.2
	}
	if r.PrepTime <= 15 {
		score += 0.1
	}
	if r.Servings >= 6 {
		score += 0.1
	}

	return min(score, 1.0)
}

func calculateCommonIngredientsScore(r recipe.Recipe) float64 {
	score := 0.3
	if len(r.CommonIngredients) > 0 {
		score = 0.5
	}

	pantryCount := 0
	for _, ing := range r.Ingredients {
		name := strings.ToLower(ing.Name)
		for _, staple := range pantryStaples {
			if strings.Contains(name, staple) {
				pantryCount++
				break
			}
		}
	}
	score += float64(pantryCount) / float64(len(pantryStaples)) * 0.3

	return min(score, 1.0)
}
