package planner

import (
	"math"
	"sort"
	"strings"
)

// SelectParams controls how many meals to pick and under what budget.
type SelectParams struct {
	Budget     float64
	MealsCount int
	People     int
}

// Select picks up to MealsCount meals from the scored candidates without
// exceeding the weekly budget. It runs three passes: best score first, then
// ingredient-overlap value while meaningful budget headroom remains, then a
// cheapest-first fill. When no affordable candidates remain the plan comes
// back short rather than over budget.
func Select(scored []ScoredRecipe, p SelectParams) []ScoredRecipe {
	selected := make([]ScoredRecipe, 0, p.MealsCount)
	chosen := make(map[string]bool)
	usedIngredients := make(map[string]int)
	totalCost := 0.0

	// First pass: highest scoring recipes that fit the budget.
	for _, r := range scored {
		if len(selected) >= p.MealsCount {
			break
		}
		if totalCost+r.ScaledCost > p.Budget {
			continue
		}
		selected = append(selected, r)
		chosen[r.ID] = true
		totalCost += r.ScaledCost
		tallyIngredients(usedIngredients, r)
	}

	// Second pass: spend remaining headroom on recipes that reuse
	// ingredients already in the cart.
	if len(selected) < p.MealsCount && totalCost < p.Budget*0.9 {
		selected, totalCost = addByIngredientOverlap(selected, scored, chosen, usedIngredients, totalCost, p)
	}

	// Final pass: fill any remaining slots with the cheapest options.
	if len(selected) < p.MealsCount {
		remaining := remainingRecipes(scored, chosen)
		sort.SliceStable(remaining, func(i, j int) bool {
			return remaining[i].ScaledCost < remaining[j].ScaledCost
		})
		for _, r := range remaining {
			if len(selected) >= p.MealsCount {
				break
			}
			if totalCost+r.ScaledCost > p.Budget {
				continue
			}
			selected = append(selected, r)
			chosen[r.ID] = true
			totalCost += r.ScaledCost
		}
	}

	return selected
}

func addByIngredientOverlap(selected, scored []ScoredRecipe, chosen map[string]bool, usedIngredients map[string]int, totalCost float64, p SelectParams) ([]ScoredRecipe, float64) {
	type overlapCandidate struct {
		ScoredRecipe
		costEfficiency float64
	}

	remaining := remainingRecipes(scored, chosen)
	candidates := make([]overlapCandidate, 0, len(remaining))
	for _, r := range remaining {
		overlap := 0
		for _, ing := range r.Ingredients {
			overlap += usedIngredients[strings.ToLower(ing.Name)]
		}
		efficiency := math.Inf(1)
		if r.ScaledCost > 0 {
			efficiency = float64(overlap) / r.ScaledCost
		}
		candidates = append(candidates, overlapCandidate{ScoredRecipe: r, costEfficiency: efficiency})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].costEfficiency > candidates[j].costEfficiency
	})

	for _, c := range candidates {
		if len(selected) >= p.MealsCount {
			break
		}
		if totalCost+c.ScaledCost > p.Budget {
			continue
		}
		selected = append(selected, c.ScoredRecipe)
		chosen[c.ID] = true
		totalCost += c.ScaledCost
		tallyIngredients(usedIngredients, c.ScoredRecipe)
	}

	return selected, totalCost
}

func remainingRecipes(scored []ScoredRecipe, chosen map[string]bool) []ScoredRecipe {
	remaining := make([]ScoredRecipe, 0, len(scored))
	for _, r := range scored {
		if !chosen[r.ID] {
			remaining = append(remaining, r)
		}
	}
	return remaining
}

func tallyIngredients(used map[string]int, r ScoredRecipe) {
	for _, ing := range r.Ingredients {
		used[strings.ToLower(ing.Name)]++
	}
}
