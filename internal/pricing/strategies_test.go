package pricing

import (
	"context"
	"errors"
	"testing"

	"budget-meal-planner/internal/llm"
	"budget-meal-planner/internal/recipe"
)

type MockTextGenerator struct {
	Response string
	Err      error
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	if m.Err != nil {
		return llm.ContentResponse{}, m.Err
	}
	return llm.ContentResponse{Content: m.Response}, nil
}

func TestAIStrategy(t *testing.T) {
	ing := recipe.Ingredient{Name: "milk", SearchTerm: "whole milk gallon"}
	loc := LocationFromZIP("78701")

	t.Run("ParsesWellFormedResponse", func(t *testing.T) {
		strategy := NewAIStrategy(&MockTextGenerator{Response: "$3.42 at H-E-B - Whole Milk 1 Gallon"})

		quote, err := strategy.Quote(context.Background(), ing, loc)
		if err != nil {
			t.Fatalf("Quote failed: %v", err)
		}
		if quote.Price != 3.42 {
			t.Errorf("Expected price 3.42, got %v", quote.Price)
		}
		if quote.Store != "H-E-B" {
			t.Errorf("Expected store 'H-E-B', got %q", quote.Store)
		}
		if quote.Name != "Whole Milk 1 Gallon" {
			t.Errorf("Expected parsed product name, got %q", quote.Name)
		}
		if quote.Source != "ai_geographic" {
			t.Errorf("Expected ai_geographic source, got %q", quote.Source)
		}
	})

	t.Run("MissingStoreDefaults", func(t *testing.T) {
		strategy := NewAIStrategy(&MockTextGenerator{Response: "$2.99"})

		quote, err := strategy.Quote(context.Background(), ing, loc)
		if err != nil {
			t.Fatalf("Quote failed: %v", err)
		}
		if quote.Store != "Local Store" {
			t.Errorf("Expected default store, got %q", quote.Store)
		}
		if quote.Name != "milk" {
			t.Errorf("Expected ingredient name fallback, got %q", quote.Name)
		}
	})

	t.Run("NoPriceInResponse", func(t *testing.T) {
		strategy := NewAIStrategy(&MockTextGenerator{Response: "I could not find a price."})

		if _, err := strategy.Quote(context.Background(), ing, loc); err == nil {
			t.Error("Expected error when response has no price")
		}
	})

	t.Run("GeneratorError", func(t *testing.T) {
		strategy := NewAIStrategy(&MockTextGenerator{Err: errors.New("rate limited")})

		if _, err := strategy.Quote(context.Background(), ing, loc); err == nil {
			t.Error("Expected error from failing generator")
		}
	})
}

func TestFeedStrategy(t *testing.T) {
	ing := recipe.Ingredient{Name: "eggs"}
	loc := LocationFromZIP("10001")

	t.Run("Success", func(t *testing.T) {
		strategy := NewFeedStrategy(feedFunc(func(ctx context.Context, name, zip string) (float64, string, error) {
			if name != "eggs" {
				t.Errorf("Expected lookup for 'eggs', got %q", name)
			}
			if zip != "10001" {
				t.Errorf("Expected ZIP 10001, got %q", zip)
			}
			return 4.29, "FreshDirect", nil
		}))

		quote, err := strategy.Quote(context.Background(), ing, loc)
		if err != nil {
			t.Fatalf("Quote failed: %v", err)
		}
		if quote.Price != 4.29 || quote.Store != "FreshDirect" {
			t.Errorf("Unexpected quote %+v", quote)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		strategy := NewFeedStrategy(feedFunc(func(ctx context.Context, name, zip string) (float64, string, error) {
			return 0, "", errors.New("feed down")
		}))

		if _, err := strategy.Quote(context.Background(), ing, loc); err == nil {
			t.Error("Expected error from failing feed")
		}
	})
}

type feedFunc func(ctx context.Context, name, zip string) (float64, string, error)

func (f feedFunc) Lookup(ctx context.Context, name, zip string) (float64, string, error) {
	return f(ctx, name, zip)
}

func TestExtractPrice(t *testing.T) {
	t.Run("VisiblePrice", func(t *testing.T) {
		html := `<html><body><div class="product"><span>$4.98</span></div></body></html>`
		price, ok := extractPrice(html)
		if !ok {
			t.Fatal("Expected a price")
		}
		if price != 4.98 {
			t.Errorf("Expected 4.98, got %v", price)
		}
	})

	t.Run("EmbeddedJSONPrice", func(t *testing.T) {
		html := `<html><body><script>{"price":"2.48"}</script></body></html>`
		price, ok := extractPrice(html)
		if !ok {
			t.Fatal("Expected a price from embedded JSON")
		}
		if price != 2.48 {
			t.Errorf("Expected 2.48, got %v", price)
		}
	})

	t.Run("ImplausiblePricesSkipped", func(t *testing.T) {
		html := `<body><span>$199.99</span><span>$0.05</span><span>$3.28</span></body>`
		price, ok := extractPrice(html)
		if !ok {
			t.Fatal("Expected a price")
		}
		if price != 3.28 {
			t.Errorf("Expected implausible prices skipped, got %v", price)
		}
	})

	t.Run("NoPrice", func(t *testing.T) {
		if _, ok := extractPrice("<body>out of stock</body>"); ok {
			t.Error("Expected no price")
		}
	})
}
