package planner

import (
	"time"

	"budget-meal-planner/internal/recipe"
)

// Plan is a complete weekly meal plan.
type Plan struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Meals     []ScaledMeal `json:"meals"`
	TotalCost float64      `json:"totalCost"`
}

// NewPlan wraps a set of scaled meals with their combined cost.
func NewPlan(id string, meals []ScaledMeal) Plan {
	total := 0.0
	for _, m := range meals {
		total += m.Pricing.TotalCost
	}
	return Plan{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Meals:     meals,
		TotalCost: round2(total),
	}
}

// RegenerateMeal picks the best-scoring alternative to the meal identified
// by currentID and scales it for the household. Candidates must already be
// allergy-filtered. Returns nil when no alternative exists.
func RegenerateMeal(currentID string, candidates []recipe.Recipe, sp ScoreParams, totalPeople int, kidAges []int) *ScaledMeal {
	available := make([]recipe.Recipe, 0, len(candidates))
	for _, r := range candidates {
		if r.ID != currentID {
			available = append(available, r)
		}
	}

	scored := ScoreRecipes(available, sp)
	if len(scored) == 0 {
		return nil
	}

	replacement := ScalePortions(scored[:1], totalPeople, kidAges)
	return &replacement[0]
}
