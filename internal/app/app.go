package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"budget-meal-planner/internal/planner"
	"budget-meal-planner/internal/pricing"
	"budget-meal-planner/internal/recipe"
	"budget-meal-planner/internal/shopping"
	"budget-meal-planner/internal/storage"
)

const minWeeklyBudget = 20

// ErrInvalidInput marks family parameters the planner rejects up front.
var ErrInvalidInput = errors.New("invalid input")

// ErrNoViableMeals signals that no candidate recipe survived filtering and
// selection for the given constraints.
var ErrNoViableMeals = errors.New("no viable meals for the given constraints")

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// FamilyParams describes the household a weekly plan is built for.
type FamilyParams struct {
	Adults              int
	Kids                int
	KidAges             []int
	WeeklyBudget        float64
	MealsCount          int
	ZIPCode             string
	Allergies           string
	DietaryRestrictions []string
}

// TotalPeople returns the household headcount.
func (p FamilyParams) TotalPeople() int {
	return p.Adults + p.Kids
}

// Validate rejects parameter combinations the planner cannot work with.
func (p FamilyParams) Validate() error {
	if p.WeeklyBudget < minWeeklyBudget {
		return fmt.Errorf("%w: weekly budget must be at least $%d", ErrInvalidInput, minWeeklyBudget)
	}
	if p.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}
	if p.Kids > 0 && len(p.KidAges) == 0 {
		return fmt.Errorf("%w: kid ages are required when kids > 0", ErrInvalidInput)
	}
	if p.ZIPCode != "" && !zipPattern.MatchString(p.ZIPCode) {
		return fmt.Errorf("%w: zip code must be 5 digits", ErrInvalidInput)
	}
	if p.MealsCount < 1 {
		return fmt.Errorf("%w: meals count must be at least 1", ErrInvalidInput)
	}
	return nil
}

// ParseKidAges parses a comma-separated list of ages, e.g. "4, 8".
func ParseKidAges(text string) ([]int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	var ages []int
	for _, part := range strings.Split(trimmed, ",") {
		age, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: kid age %q is not a number", ErrInvalidInput, part)
		}
		ages = append(ages, age)
	}
	return ages, nil
}

// RecipeSource produces recipe candidates for a family. Implemented by
// recipe.Generator; nil means catalog-only planning.
type RecipeSource interface {
	GenerateRecipes(ctx context.Context, familySize int, weeklyBudget float64, zipCode string, dietaryRestrictions []string) ([]recipe.Recipe, error)
}

// ListGenerator builds a priced shopping list from scaled meals. Implemented
// by shopping.Generator.
type ListGenerator interface {
	Generate(ctx context.Context, meals []planner.ScaledMeal, loc pricing.Location) (shopping.ShoppingList, error)
}

// App holds the application's dependencies.
type App struct {
	recipeSource RecipeSource
	listGen      ListGenerator
	recipeRepo   *recipe.Repository
	planRepo     *planner.Repository
	listRepo     *shopping.Repository
	planStore    *storage.PlanStore
}

// NewApp creates and initializes a new App instance. recipeSource may be nil,
// in which case planning draws from the built-in catalog only.
func NewApp(
	recipeSource RecipeSource,
	listGen ListGenerator,
	recipeRepo *recipe.Repository,
	planRepo *planner.Repository,
	listRepo *shopping.Repository,
	planStore *storage.PlanStore,
) *App {
	return &App{
		recipeSource: recipeSource,
		listGen:      listGen,
		recipeRepo:   recipeRepo,
		planRepo:     planRepo,
		listRepo:     listRepo,
		planStore:    planStore,
	}
}

// Result pairs a generated plan with its shopping list.
type Result struct {
	Plan         planner.Plan
	ShoppingList shopping.ShoppingList
}

// PlanMeals builds a complete weekly plan: candidate recipes, allergy
// filtering, scoring, selection within budget, portion scaling, and a priced
// consolidated shopping list. The plan and list are persisted before return;
// persistence failures are logged, not fatal.
func (a *App) PlanMeals(ctx context.Context, params FamilyParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	candidates := a.gatherCandidates(ctx, params)
	filtered := recipe.FilterByAllergies(candidates, params.Allergies)
	if len(filtered) == 0 {
		return nil, ErrNoViableMeals
	}

	loc := pricing.LocationFromZIP(params.ZIPCode)
	scored := planner.ScoreRecipes(filtered, planner.ScoreParams{
		Budget:      params.WeeklyBudget,
		People:      params.TotalPeople(),
		MealsNeeded: params.MealsCount,
		State:       loc.State,
	})

	selected := planner.Select(scored, planner.SelectParams{
		Budget:     params.WeeklyBudget,
		MealsCount: params.MealsCount,
		People:     params.TotalPeople(),
	})
	if len(selected) == 0 {
		return nil, ErrNoViableMeals
	}

	meals := planner.ScalePortions(selected, params.TotalPeople(), params.KidAges)
	plan := planner.NewPlan(newPlanID(), meals)

	list, err := a.listGen.Generate(ctx, meals, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to build shopping list: %w", err)
	}
	list.ID = plan.ID + "-list"

	a.persist(ctx, plan, list)

	return &Result{Plan: plan, ShoppingList: list}, nil
}

// RegenerateMeal swaps out one meal of a saved plan for the best-scoring
// alternative, rebuilds the shopping list from scratch, and re-saves both.
// Returns nil when no alternative candidate remains.
func (a *App) RegenerateMeal(ctx context.Context, planID string, index int, params FamilyParams) (*planner.ScaledMeal, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	plan, err := a.planRepo.Get(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %s: %w", planID, err)
	}
	if plan == nil {
		return nil, fmt.Errorf("plan %s not found", planID)
	}
	if index < 0 || index >= len(plan.Meals) {
		return nil, fmt.Errorf("%w: meal index %d out of range", ErrInvalidInput, index)
	}

	current := plan.Meals[index]
	candidates := excludePlanned(
		recipe.FilterByAllergies(a.gatherCandidates(ctx, params), params.Allergies),
		plan.Meals, current.ID,
	)

	loc := pricing.LocationFromZIP(params.ZIPCode)
	replacement := planner.RegenerateMeal(current.ID, candidates, planner.ScoreParams{
		Budget:      params.WeeklyBudget,
		People:      params.TotalPeople(),
		MealsNeeded: params.MealsCount,
		State:       loc.State,
	}, params.TotalPeople(), params.KidAges)
	if replacement == nil {
		return nil, nil
	}

	plan.Meals[index] = *replacement
	updated := planner.NewPlan(plan.ID, plan.Meals)
	updated.CreatedAt = plan.CreatedAt

	list, err := a.listGen.Generate(ctx, updated.Meals, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild shopping list: %w", err)
	}
	list.ID = updated.ID + "-list"

	a.persist(ctx, updated, list)

	return replacement, nil
}

// gatherCandidates merges the built-in catalog with model-generated recipes.
// Generation failures degrade to catalog-only planning.
func (a *App) gatherCandidates(ctx context.Context, params FamilyParams) []recipe.Recipe {
	candidates := recipe.Catalog()

	if a.recipeSource != nil {
		generated, err := a.recipeSource.GenerateRecipes(ctx, params.TotalPeople(), params.WeeklyBudget, params.ZIPCode, params.DietaryRestrictions)
		if err != nil {
			log.Printf("Recipe generation failed, continuing with catalog: %v", err)
		} else {
			candidates = append(candidates, generated...)
			a.saveGenerated(ctx, generated)
		}
	}

	return candidates
}

func (a *App) saveGenerated(ctx context.Context, generated []recipe.Recipe) {
	if a.recipeRepo == nil {
		return
	}
	for _, rec := range generated {
		if err := a.recipeRepo.Save(ctx, rec); err != nil {
			log.Printf("Warning: failed to save generated recipe '%s': %v", rec.Name, err)
		}
	}
}

func (a *App) persist(ctx context.Context, plan planner.Plan, list shopping.ShoppingList) {
	if a.planRepo != nil {
		if err := a.planRepo.Save(ctx, plan); err != nil {
			log.Printf("Warning: failed to save plan %s: %v", plan.ID, err)
		}
	}
	if a.listRepo != nil {
		if err := a.listRepo.Save(ctx, plan.ID, list); err != nil {
			log.Printf("Warning: failed to save shopping list for plan %s: %v", plan.ID, err)
		}
	}
	if a.planStore != nil {
		if err := a.planStore.Save(plan); err != nil {
			log.Printf("Warning: failed to snapshot plan %s to disk: %v", plan.ID, err)
		}
	}
}

// excludePlanned drops candidates already placed in the plan, except the one
// being replaced (planner.RegenerateMeal excludes that itself).
func excludePlanned(candidates []recipe.Recipe, meals []planner.ScaledMeal, currentID string) []recipe.Recipe {
	planned := make(map[string]bool, len(meals))
	for _, m := range meals {
		if m.ID != currentID {
			planned[m.ID] = true
		}
	}

	kept := make([]recipe.Recipe, 0, len(candidates))
	for _, c := range candidates {
		if !planned[c.ID] {
			kept = append(kept, c)
		}
	}
	return kept
}

func newPlanID() string {
	return fmt.Sprintf("plan-%d", time.Now().UnixMilli())
}
