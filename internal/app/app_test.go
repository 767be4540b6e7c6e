package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"budget-meal-planner/internal/planner"
	"budget-meal-planner/internal/pricing"
	"budget-meal-planner/internal/recipe"
	"budget-meal-planner/internal/shopping"

	_ "modernc.org/sqlite"
)

type stubListGen struct {
	calls int
}

func (s *stubListGen) Generate(ctx context.Context, meals []planner.ScaledMeal, loc pricing.Location) (shopping.ShoppingList, error) {
	s.calls++
	return shopping.ShoppingList{MealCount: len(meals)}, nil
}

type stubRecipeSource struct {
	recipes []recipe.Recipe
	err     error
}

func (s *stubRecipeSource) GenerateRecipes(ctx context.Context, familySize int, weeklyBudget float64, zipCode string, dietaryRestrictions []string) ([]recipe.Recipe, error) {
	return s.recipes, s.err
}

func validParams() FamilyParams {
	return FamilyParams{
		Adults:       2,
		Kids:         2,
		KidAges:      []int{4, 8},
		WeeklyBudget: 150,
		MealsCount:   7,
		ZIPCode:      "78701",
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FamilyParams)
	}{
		{"BudgetTooLow", func(p *FamilyParams) { p.WeeklyBudget = 19.99 }},
		{"NoAdults", func(p *FamilyParams) { p.Adults = 0 }},
		{"KidsWithoutAges", func(p *FamilyParams) { p.KidAges = nil }},
		{"MalformedZIP", func(p *FamilyParams) { p.ZIPCode = "787" }},
		{"ZeroMeals", func(p *FamilyParams) { p.MealsCount = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)
			err := params.Validate()
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}

	t.Run("ValidPasses", func(t *testing.T) {
		if err := validParams().Validate(); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("EmptyZIPAllowed", func(t *testing.T) {
		params := validParams()
		params.ZIPCode = ""
		if err := params.Validate(); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestParseKidAges(t *testing.T) {
	ages, err := ParseKidAges("4, 8")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(ages) != 2 || ages[0] != 4 || ages[1] != 8 {
		t.Errorf("Expected [4 8], got %v", ages)
	}

	ages, err = ParseKidAges("")
	if err != nil || ages != nil {
		t.Errorf("Expected nil for blank input, got %v, %v", ages, err)
	}

	if _, err := ParseKidAges("4, eight"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestPlanMeals(t *testing.T) {
	t.Run("CatalogOnlyPlan", func(t *testing.T) {
		listGen := &stubListGen{}
		a := NewApp(nil, listGen, nil, nil, nil, nil)

		result, err := a.PlanMeals(context.Background(), validParams())
		if err != nil {
			t.Fatalf("PlanMeals failed: %v", err)
		}

		if len(result.Plan.Meals) == 0 || len(result.Plan.Meals) > 7 {
			t.Errorf("Expected 1-7 meals, got %d", len(result.Plan.Meals))
		}
		if result.Plan.TotalCost <= 0 || result.Plan.TotalCost > 150 {
			t.Errorf("Expected total within budget, got %v", result.Plan.TotalCost)
		}
		if result.ShoppingList.ID != result.Plan.ID+"-list" {
			t.Errorf("Expected list ID derived from plan, got %q", result.ShoppingList.ID)
		}
		if listGen.calls != 1 {
			t.Errorf("Expected one shopping list build, got %d", listGen.calls)
		}
	})

	t.Run("GenerationFailureFallsBackToCatalog", func(t *testing.T) {
		source := &stubRecipeSource{err: errors.New("model offline")}
		a := NewApp(source, &stubListGen{}, nil, nil, nil, nil)

		result, err := a.PlanMeals(context.Background(), validParams())
		if err != nil {
			t.Fatalf("PlanMeals failed: %v", err)
		}
		if len(result.Plan.Meals) == 0 {
			t.Error("Expected catalog meals despite generation failure")
		}
	})

	t.Run("GeneratedRecipesJoinThePool", func(t *testing.T) {
		generated := recipe.Recipe{
			ID:         "ai-free-feast",
			Name:       "Free Feast",
			Servings:   6,
			PrepTime:   10,
			Difficulty: "Easy",
			Ingredients: []recipe.Ingredient{
				{Name: "rice", Amount: 1, Unit: "cups", Category: recipe.CategoryPantry},
				{Name: "onion", Amount: 0.5, Unit: "whole", Category: recipe.CategoryProduce},
				{Name: "garlic", Amount: 1, Unit: "cloves", Category: recipe.CategoryProduce},
				{Name: "olive oil", Amount: 1, Unit: "tbsp", Category: recipe.CategoryPantry},
				{Name: "salt", Amount: 0.5, Unit: "tsp", Category: recipe.CategorySpices},
				{Name: "black pepper", Amount: 0.25, Unit: "tsp", Category: recipe.CategorySpices},
				{Name: "flour", Amount: 1, Unit: "tbsp", Category: recipe.CategoryPantry},
			},
			Nutrition:         recipe.Nutrition{Calories: 400, Protein: 30, Fiber: 8},
			Tags:              []string{"ai-generated", "kid-friendly"},
			CommonIngredients: []string{"rice", "onion", "garlic"},
		}
		source := &stubRecipeSource{recipes: []recipe.Recipe{generated}}
		a := NewApp(source, &stubListGen{}, nil, nil, nil, nil)

		result, err := a.PlanMeals(context.Background(), validParams())
		if err != nil {
			t.Fatalf("PlanMeals failed: %v", err)
		}

		found := false
		for _, meal := range result.Plan.Meals {
			if meal.ID == "ai-free-feast" {
				found = true
			}
		}
		if !found {
			t.Error("Expected near-free generated recipe to be selected")
		}
	})

	t.Run("InvalidParamsRejected", func(t *testing.T) {
		a := NewApp(nil, &stubListGen{}, nil, nil, nil, nil)
		params := validParams()
		params.WeeklyBudget = 5

		if _, err := a.PlanMeals(context.Background(), params); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("NoViableMealsAfterFiltering", func(t *testing.T) {
		a := NewApp(nil, &stubListGen{}, nil, nil, nil, nil)
		params := validParams()
		// Single-letter allergens substring-match essentially every recipe.
		params.Allergies = "a, e, i, o, u"

		if _, err := a.PlanMeals(context.Background(), params); !errors.Is(err, ErrNoViableMeals) {
			t.Errorf("Expected ErrNoViableMeals, got %v", err)
		}
	})
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE meal_plans (
			id TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			total_cost REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE shopping_lists (
			id TEXT PRIMARY KEY,
			plan_id TEXT NOT NULL,
			data TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to create schema: %v", err)
		}
	}
	return db
}

func TestRegenerateMeal(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	planRepo := planner.NewRepository(db)
	listRepo := shopping.NewRepository(db)

	a := NewApp(nil, &stubListGen{}, nil, planRepo, listRepo, nil)
	params := validParams()

	result, err := a.PlanMeals(ctx, params)
	if err != nil {
		t.Fatalf("PlanMeals failed: %v", err)
	}

	original := result.Plan.Meals[0]
	replacement, err := a.RegenerateMeal(ctx, result.Plan.ID, 0, params)
	if err != nil {
		t.Fatalf("RegenerateMeal failed: %v", err)
	}
	if replacement == nil {
		t.Fatal("Expected a replacement meal")
	}
	if replacement.ID == original.ID {
		t.Errorf("Expected a different recipe, got %q again", replacement.ID)
	}

	// The slot change must be persisted.
	saved, err := planRepo.Get(ctx, result.Plan.ID)
	if err != nil {
		t.Fatalf("Failed to reload plan: %v", err)
	}
	if saved.Meals[0].ID != replacement.ID {
		t.Errorf("Expected saved plan to contain %q, got %q", replacement.ID, saved.Meals[0].ID)
	}

	t.Run("IndexOutOfRange", func(t *testing.T) {
		if _, err := a.RegenerateMeal(ctx, result.Plan.ID, 99, params); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("UnknownPlan", func(t *testing.T) {
		if _, err := a.RegenerateMeal(ctx, "plan-missing", 0, params); err == nil {
			t.Error("Expected an error for an unknown plan")
		}
	})
}
