package pricing

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"budget-meal-planner/internal/recipe"
)

// Resolver walks an ordered strategy chain until one produces a quote.
// Resolution never fails: the shelf-price table backstops every lookup.
// Results are memoized per ingredient, amount, unit and location.
type Resolver struct {
	strategies []Strategy
	delay      time.Duration

	mu         sync.Mutex
	cache      map[string]Quote
	nextLookup time.Time
}

// NewResolver builds a resolver over the given strategies. The delay is
// inserted between consecutive cache-miss lookups to stay polite to
// upstream services; cache hits never wait.
func NewResolver(delay time.Duration, strategies ...Strategy) *Resolver {
	return &Resolver{
		strategies: strategies,
		delay:      delay,
		cache:      make(map[string]Quote),
	}
}

func cacheKey(ing recipe.Ingredient, loc Location) string {
	return fmt.Sprintf("%s-%g-%s-%s", ing.Name, ing.Amount, ing.Unit, loc.ZIP)
}

// Price resolves a single ingredient.
func (r *Resolver) Price(ctx context.Context, ing recipe.Ingredient, loc Location) Quote {
	key := cacheKey(ing, loc)

	r.mu.Lock()
	if quote, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return quote
	}
	r.mu.Unlock()

	r.pause(ctx)
	quote := r.resolve(ctx, ing, loc)

	r.mu.Lock()
	r.cache[key] = quote
	r.mu.Unlock()

	return quote
}

// pause spaces out external lookups. Each caller reserves the next slot
// under the lock, so concurrent misses queue up delay-apart rather than
// hitting upstream services at once. A cancelled context stops the wait;
// the strategies then fail fast and the shelf-price backstop answers.
func (r *Resolver) pause(ctx context.Context) {
	if r.delay <= 0 {
		return
	}

	r.mu.Lock()
	now := time.Now()
	slot := r.nextLookup
	if slot.Before(now) {
		slot = now
	}
	r.nextLookup = slot.Add(r.delay)
	r.mu.Unlock()

	if wait := time.Until(slot); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
		}
	}
}

func (r *Resolver) resolve(ctx context.Context, ing recipe.Ingredient, loc Location) Quote {
	for _, strategy := range r.strategies {
		quote, err := strategy.Quote(ctx, ing, loc)
		if err != nil {
			log.Printf("pricing: %s failed for %s: %v", strategy.Name(), ing.Name, err)
			continue
		}
		if quote != nil {
			return *quote
		}
	}

	// Shelf-price table backstop.
	return Quote{
		Name:       ing.Name,
		Price:      BaseEstimate(ing.Name),
		Source:     "basic_fallback",
		Confidence: "estimated",
	}
}

// PriceAll resolves every ingredient in order. Price itself paces the
// lookups, so this only adds batch cancellation. The returned slice is
// index-aligned with the input.
func (r *Resolver) PriceAll(ctx context.Context, ings []recipe.Ingredient, loc Location) ([]Quote, error) {
	quotes := make([]Quote, 0, len(ings))
	for _, ing := range ings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		quotes = append(quotes, r.Price(ctx, ing, loc))
	}
	return quotes, nil
}

// Clear drops all memoized quotes.
func (r *Resolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]Quote)
}
