package recipe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"budget-meal-planner/internal/llm"
)

type MockTextGenerator struct {
	Response string
	Err      error
	Prompt   string
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	m.Prompt = prompt
	if m.Err != nil {
		return llm.ContentResponse{}, m.Err
	}
	return llm.ContentResponse{Content: m.Response}, nil
}

func TestGenerateRecipes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mock := &MockTextGenerator{
			Response: `Here are your recipes:
[
  {
    "name": "Veggie Stir Fry",
    "description": "Quick dinner",
    "servings": 4,
    "ingredients": [{"name": "rice", "amount": 2, "unit": "cups", "category": "pantry"}],
    "instructions": ["Cook rice", "Stir fry vegetables"]
  },
  {
    "name": "Bean Tacos",
    "servings": 4,
    "ingredients": [{"name": "beans", "amount": 1, "unit": "cans", "category": "pantry"}],
    "instructions": ["Warm beans", "Fill tortillas"]
  }
]`,
		}
		gen := NewGenerator(mock)

		recipes, err := gen.GenerateRecipes(context.Background(), 4, 150, "75001", []string{"vegetarian"})
		if err != nil {
			t.Fatalf("GenerateRecipes failed: %v", err)
		}
		if len(recipes) != 2 {
			t.Fatalf("Expected 2 recipes, got %d", len(recipes))
		}
		if recipes[0].Name != "Veggie Stir Fry" {
			t.Errorf("Expected 'Veggie Stir Fry', got '%s'", recipes[0].Name)
		}
		if !recipes[0].HasTag("ai-generated") {
			t.Error("Expected ai-generated tag on generated recipe")
		}
		if recipes[0].ID == "" || recipes[0].ID == recipes[1].ID {
			t.Error("Expected distinct non-empty generated IDs")
		}
		if recipes[1].Difficulty != "Easy" {
			t.Errorf("Expected defaulted difficulty 'Easy', got '%s'", recipes[1].Difficulty)
		}
		if !strings.Contains(mock.Prompt, "vegetarian") {
			t.Error("Expected dietary restrictions to appear in the prompt")
		}
		if !strings.Contains(mock.Prompt, "75001") {
			t.Error("Expected ZIP code to appear in the prompt")
		}
	})

	t.Run("SkipsMalformedEntries", func(t *testing.T) {
		mock := &MockTextGenerator{
			Response: `[
  {"name": "", "servings": 4, "ingredients": [{"name": "rice", "amount": 1, "unit": "cup"}], "instructions": ["x"]},
  {"name": "Good Dish", "servings": 4, "ingredients": [{"name": "rice", "amount": 1, "unit": "cup"}], "instructions": ["x"]}
]`,
		}
		gen := NewGenerator(mock)

		recipes, err := gen.GenerateRecipes(context.Background(), 4, 100, "10001", nil)
		if err != nil {
			t.Fatalf("GenerateRecipes failed: %v", err)
		}
		if len(recipes) != 1 {
			t.Fatalf("Expected 1 recipe after skipping malformed entry, got %d", len(recipes))
		}
		if recipes[0].Name != "Good Dish" {
			t.Errorf("Expected 'Good Dish', got '%s'", recipes[0].Name)
		}
	})

	t.Run("NoJSONArray", func(t *testing.T) {
		mock := &MockTextGenerator{Response: "I cannot help with that."}
		gen := NewGenerator(mock)

		_, err := gen.GenerateRecipes(context.Background(), 4, 100, "10001", nil)
		if err == nil {
			t.Error("Expected error when response contains no JSON array")
		}
	})

	t.Run("GeneratorError", func(t *testing.T) {
		mock := &MockTextGenerator{Err: errors.New("rate limited")}
		gen := NewGenerator(mock)

		_, err := gen.GenerateRecipes(context.Background(), 4, 100, "10001", nil)
		if err == nil {
			t.Error("Expected error from failing text generator")
		}
	})
}
