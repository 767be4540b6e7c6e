package recipe

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	base := func() Recipe {
		return Recipe{
			Name:     "Test Dish",
			Servings: 4,
			Ingredients: []Ingredient{
				{Name: "rice", Amount: 2, Unit: "cups", Category: CategoryPantry},
			},
			Instructions: []string{"Cook the rice"},
		}
	}

	t.Run("FillsDefaults", func(t *testing.T) {
		r := base()
		if err := Normalize(&r, 4); err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if r.PrepTime != defaultPrepTime {
			t.Errorf("Expected prep time %d, got %d", defaultPrepTime, r.PrepTime)
		}
		if r.CookTime != defaultCookTime {
			t.Errorf("Expected cook time %d, got %d", defaultCookTime, r.CookTime)
		}
		if r.Difficulty != "Easy" {
			t.Errorf("Expected difficulty 'Easy', got '%s'", r.Difficulty)
		}
		if r.Nutrition.Calories != defaultNutrition.Calories {
			t.Errorf("Expected default calories %v, got %v", defaultNutrition.Calories, r.Nutrition.Calories)
		}
	})

	t.Run("ZeroServingsUsesFallback", func(t *testing.T) {
		r := base()
		r.Servings = 0
		if err := Normalize(&r, 5); err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if r.Servings != 5 {
			t.Errorf("Expected servings 5, got %d", r.Servings)
		}
	})

	t.Run("InvalidCategoryFallsBackToPantry", func(t *testing.T) {
		r := base()
		r.Ingredients[0].Category = "weird"
		if err := Normalize(&r, 4); err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if r.Ingredients[0].Category != CategoryPantry {
			t.Errorf("Expected pantry category, got '%s'", r.Ingredients[0].Category)
		}
	})

	t.Run("SearchTermDefaultsToName", func(t *testing.T) {
		r := base()
		if err := Normalize(&r, 4); err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if r.Ingredients[0].SearchTerm != "rice" {
			t.Errorf("Expected search term 'rice', got '%s'", r.Ingredients[0].SearchTerm)
		}
	})

	t.Run("RejectsMissingName", func(t *testing.T) {
		r := base()
		r.Name = ""
		if err := Normalize(&r, 4); err == nil {
			t.Error("Expected error for missing name")
		}
	})

	t.Run("RejectsEmptyIngredients", func(t *testing.T) {
		r := base()
		r.Ingredients = nil
		if err := Normalize(&r, 4); err == nil {
			t.Error("Expected error for empty ingredients")
		}
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		r := base()
		r.Ingredients[0].Amount = 0
		if err := Normalize(&r, 4); err == nil {
			t.Error("Expected error for zero ingredient amount")
		}
	})
}

func TestCatalog(t *testing.T) {
	recipes := Catalog()
	if len(recipes) == 0 {
		t.Fatal("Expected non-empty catalog")
	}
	seen := make(map[string]bool)
	for _, r := range recipes {
		if r.ID == "" {
			t.Errorf("Recipe '%s' has empty ID", r.Name)
		}
		if seen[r.ID] {
			t.Errorf("Duplicate recipe ID '%s'", r.ID)
		}
		seen[r.ID] = true
		if r.Servings <= 0 {
			t.Errorf("Recipe '%s' has non-positive servings", r.Name)
		}
		if len(r.Ingredients) == 0 {
			t.Errorf("Recipe '%s' has no ingredients", r.Name)
		}
	}
}

func TestHasTag(t *testing.T) {
	r := Recipe{Tags: []string{"kid-friendly", "quick"}}
	if !r.HasTag("Kid-Friendly") {
		t.Error("Expected case-insensitive tag match")
	}
	if r.HasTag("vegan") {
		t.Error("Expected miss for absent tag")
	}
}
