package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"budget-meal-planner/internal/llm"
)

// Generator produces recipe candidates from a large-language model, falling
// back to the built-in catalog when the model is unavailable or returns
// nothing usable.
type Generator struct {
	textGen llm.TextGenerator
}

// NewGenerator creates a new Generator instance.
func NewGenerator(textGen llm.TextGenerator) *Generator {
	return &Generator{textGen: textGen}
}

// GenerateRecipes asks the model for a week of budget recipes tailored to the
// family. Malformed entries in the response are logged and skipped rather
// than failing the batch; at most 7 recipes are returned.
func (g *Generator) GenerateRecipes(ctx context.Context, familySize int, weeklyBudget float64, zipCode string, dietaryRestrictions []string) ([]Recipe, error) {
	budgetPerMeal := weeklyBudget / 7

	prompt := buildRecipePrompt(familySize, budgetPerMeal, dietaryRestrictions)

	resp, err := g.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipes: %w", err)
	}

	recipes, err := parseGeneratedRecipes(resp.Content, familySize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated recipes: %w. Response: %s", err, resp.Content)
	}

	if len(recipes) == 0 {
		return nil, fmt.Errorf("model returned no usable recipes")
	}
	return recipes, nil
}

func buildRecipePrompt(familySize int, budgetPerMeal float64, dietaryRestrictions []string) string {
	restrictionsText := ""
	if len(dietaryRestrictions) > 0 {
		restrictionsText = fmt.Sprintf("Dietary restrictions: %s. ", strings.Join(dietaryRestrictions, ", "))
	}

	return fmt.Sprintf(`Generate 7 unique, healthy, and budget-friendly recipes for a family of %d people.

REQUIREMENTS:
- Each recipe should cost approximately $%.2f or less
- Focus on nutritious, whole foods with good protein, vegetables, and whole grains
- Minimize processed foods and maximize fresh ingredients
- Include complete ingredient lists with specific grocery product names
- Make recipes kid-friendly but appealing to adults
- %s

FORMAT each recipe as JSON with this exact structure:
{
  "name": "Recipe Name",
  "description": "Brief appealing description focusing on health benefits",
  "servings": %d,
  "prepTime": [minutes],
  "cookTime": [minutes],
  "difficulty": "Easy|Medium|Hard",
  "ingredients": [
    {
      "name": "specific grocery product name",
      "amount": [number],
      "unit": "cups|lbs|packages|etc",
      "category": "produce|meat|dairy|pantry|frozen|spices",
      "searchTerm": "exact product to search for"
    }
  ],
  "instructions": ["step 1", "step 2"],
  "nutrition": {
    "calories": [per serving],
    "protein": [grams],
    "carbs": [grams],
    "fat": [grams],
    "fiber": [grams]
  },
  "tags": ["healthy", "budget", "family-friendly"],
  "allergens": ["dairy", "gluten", ...]
}

Return an array of 7 recipes in valid JSON format. Do not include any other text or formatting in your response.`,
		familySize, budgetPerMeal, restrictionsText, familySize)
}

// parseGeneratedRecipes extracts the JSON array from the model output,
// applies ingestion defaults, and drops malformed entries.
func parseGeneratedRecipes(content string, familySize int) ([]Recipe, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var raw []Recipe
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe array: %w", err)
	}

	now := time.Now().UnixMilli()
	recipes := make([]Recipe, 0, len(raw))
	for i := range raw {
		r := raw[i]
		if r.ID == "" {
			r.ID = fmt.Sprintf("ai-recipe-%d-%d", now, i)
		}
		r.Tags = append(r.Tags, "ai-generated")
		if err := Normalize(&r, familySize); err != nil {
			log.Printf("Skipping malformed generated recipe: %v", err)
			continue
		}
		recipes = append(recipes, r)
		if len(recipes) == 7 {
			break
		}
	}
	return recipes, nil
}
