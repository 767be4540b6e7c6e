package recipe

import "strings"

// FilterByAllergies removes recipes that conflict with the given allergy or
// dislike text. The text is comma-separated; each token is matched as a
// substring (in either direction) against a recipe's declared allergens,
// ingredient names, name, and description. Blank text returns the input
// unchanged.
func FilterByAllergies(recipes []Recipe, allergyText string) []Recipe {
	tokens := splitAllergyText(allergyText)
	if len(tokens) == 0 {
		return recipes
	}

	filtered := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !recipeConflicts(r, tokens) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func splitAllergyText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(strings.ToLower(text), ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func recipeConflicts(r Recipe, tokens []string) bool {
	for _, allergen := range r.Allergens {
		if anyTokenMatches(tokens, strings.ToLower(allergen)) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if anyTokenMatches(tokens, strings.ToLower(ing.Name)) {
			return true
		}
	}
	name := strings.ToLower(r.Name)
	desc := strings.ToLower(r.Description)
	for _, tok := range tokens {
		if strings.Contains(name, tok) || strings.Contains(desc, tok) {
			return true
		}
	}
	return false
}

// anyTokenMatches checks substring containment in both directions, so
// "peanut" matches the allergen "peanuts" and vice versa.
func anyTokenMatches(tokens []string, value string) bool {
	for _, tok := range tokens {
		if strings.Contains(value, tok) || strings.Contains(tok, value) {
			return true
		}
	}
	return false
}
