package pricing

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"budget-meal-planner/internal/llm"
	"budget-meal-planner/internal/recipe"
)

// Quote is one resolved price for a shopping-list ingredient.
type Quote struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Store      string  `json:"store,omitempty"`
	Location   string  `json:"location,omitempty"`
	Source     string  `json:"source"`
	Confidence string  `json:"confidence"`
}

// Strategy is one way of finding a price. Strategies are tried in order;
// an error or nil quote moves resolution to the next strategy.
type Strategy interface {
	Name() string
	Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error)
}

func searchTerm(ing recipe.Ingredient) string {
	if ing.SearchTerm != "" {
		return ing.SearchTerm
	}
	return ing.Name
}

// Feed is a bulk pricing backend, typically a hosted price feed.
type Feed interface {
	Lookup(ctx context.Context, name, zipCode string) (price float64, store string, err error)
}

type feedStrategy struct {
	feed Feed
}

// NewFeedStrategy prices ingredients through a hosted price feed.
func NewFeedStrategy(feed Feed) Strategy {
	return &feedStrategy{feed: feed}
}

func (s *feedStrategy) Name() string { return "price_feed" }

func (s *feedStrategy) Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error) {
	price, store, err := s.feed.Lookup(ctx, searchTerm(ing), loc.ZIP)
	if err != nil {
		return nil, fmt.Errorf("price feed lookup failed: %w", err)
	}
	return &Quote{
		Name:       ing.Name,
		Price:      round2(price),
		Store:      store,
		Location:   loc.ZIP,
		Source:     "price_feed",
		Confidence: "feed_data",
	}, nil
}

var (
	aiPricePattern   = regexp.MustCompile(`\$(\d+\.\d{2})`)
	aiStorePattern   = regexp.MustCompile(`at\s+([^-]+)`)
	aiProductPattern = regexp.MustCompile(`-\s*(.+)$`)
)

type aiStrategy struct {
	textGen llm.TextGenerator
}

// NewAIStrategy asks a language model for a region-aware price estimate.
func NewAIStrategy(textGen llm.TextGenerator) Strategy {
	return &aiStrategy{textGen: textGen}
}

func (s *aiStrategy) Name() string { return "ai_geographic" }

func (s *aiStrategy) Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error) {
	prompt := fmt.Sprintf(`You are a grocery price researcher. Find the current price for "%s" at grocery stores (Walmart, Target, Kroger, etc.) in %s, %s (ZIP: %s).

Consider:
- Local cost of living in %s, %s
- Current grocery inflation
- Typical pricing for the %s region
- Store competition in the %s area

Respond with a single line in this exact format: "$X.XX at [Store] - [Product Name]"`,
		searchTerm(ing), loc.City, loc.State, loc.ZIP,
		loc.City, loc.State, loc.Region, loc.Metro)

	resp, err := s.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai pricing failed: %w", err)
	}

	content := strings.TrimSpace(resp.Content)

	priceMatch := aiPricePattern.FindStringSubmatch(content)
	if priceMatch == nil {
		return nil, errors.New("ai pricing response contained no price")
	}
	price, err := strconv.ParseFloat(priceMatch[1], 64)
	if err != nil {
		return nil, fmt.Errorf("ai pricing returned unparseable price: %w", err)
	}

	store := "Local Store"
	if m := aiStorePattern.FindStringSubmatch(content); m != nil {
		store = strings.TrimSpace(m[1])
	}
	name := ing.Name
	if m := aiProductPattern.FindStringSubmatch(content); m != nil {
		name = strings.TrimSpace(m[1])
	}

	return &Quote{
		Name:       name,
		Price:      round2(price),
		Store:      store,
		Location:   fmt.Sprintf("%s, %s", loc.City, loc.State),
		Source:     "ai_geographic",
		Confidence: "ai_regional_search",
	}, nil
}

type storeSearchStrategy struct {
	scraper *Scraper
	delay   time.Duration
}

// NewStoreSearchStrategy searches the region's grocery chains and keeps the
// cheapest hit.
func NewStoreSearchStrategy(scraper *Scraper, delay time.Duration) Strategy {
	return &storeSearchStrategy{scraper: scraper, delay: delay}
}

func (s *storeSearchStrategy) Name() string { return "geographic_search" }

func (s *storeSearchStrategy) Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error) {
	var best *ScrapedProduct

	for i, chain := range RegionalStoreChains(loc.State) {
		if i > 0 && s.delay > 0 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		product, err := s.scraper.SearchStore(ctx, chain, searchTerm(ing))
		if err != nil || product == nil {
			continue
		}
		if best == nil || product.Price < best.Price {
			best = product
		}
	}

	if best == nil {
		return nil, errors.New("no regional store returned a price")
	}

	return &Quote{
		Name:       best.Name,
		Price:      round2(best.Price),
		Store:      best.Store,
		Location:   fmt.Sprintf("%s, %s", loc.City, loc.State),
		Source:     "geographic_search",
		Confidence: "regional_store_data",
	}, nil
}

type retailerStrategy struct {
	scraper *Scraper
}

// NewRetailerStrategy scrapes national retailer search pages directly.
func NewRetailerStrategy(scraper *Scraper) Strategy {
	return &retailerStrategy{scraper: scraper}
}

func (s *retailerStrategy) Name() string { return "retailer_scrape" }

func (s *retailerStrategy) Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error) {
	product, err := s.scraper.SearchRetailers(ctx, searchTerm(ing))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("no retailer returned a price")
	}
	return &Quote{
		Name:       product.Name,
		Price:      round2(product.Price),
		Store:      product.Store,
		Location:   loc.ZIP,
		Source:     "retailer_scrape",
		Confidence: "scraped",
	}, nil
}

type regionalEstimateStrategy struct{}

// NewRegionalEstimateStrategy adjusts national shelf prices by ZIP-range
// cost of living.
func NewRegionalEstimateStrategy() Strategy {
	return regionalEstimateStrategy{}
}

func (regionalEstimateStrategy) Name() string { return "regional_estimate" }

func (regionalEstimateStrategy) Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error) {
	if _, err := strconv.Atoi(loc.ZIP); err != nil {
		return nil, fmt.Errorf("invalid ZIP code %q: %w", loc.ZIP, err)
	}
	base := BaseEstimate(ing.Name)
	return &Quote{
		Name:       ing.Name,
		Price:      round2(base * ZIPMultiplier(loc.ZIP)),
		Location:   loc.ZIP,
		Source:     "regional_estimate",
		Confidence: "estimated",
	}, nil
}

type basicEstimateStrategy struct{}

// NewBasicEstimateStrategy prices from the national shelf-price table.
// It never fails.
func NewBasicEstimateStrategy() Strategy {
	return basicEstimateStrategy{}
}

func (basicEstimateStrategy) Name() string { return "basic_estimate" }

func (basicEstimateStrategy) Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error) {
	return &Quote{
		Name:       ing.Name,
		Price:      BaseEstimate(ing.Name),
		Source:     "basic_estimate",
		Confidence: "estimated",
	}, nil
}
