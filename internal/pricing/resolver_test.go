package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget-meal-planner/internal/recipe"
)

type stubStrategy struct {
	name  string
	quote *Quote
	err   error
	calls int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Quote(ctx context.Context, ing recipe.Ingredient, loc Location) (*Quote, error) {
	s.calls++
	return s.quote, s.err
}

func TestResolver(t *testing.T) {
	ing := recipe.Ingredient{Name: "milk", Amount: 1, Unit: "gallon"}
	loc := LocationFromZIP("78701")

	t.Run("FirstStrategyWins", func(t *testing.T) {
		first := &stubStrategy{name: "first", quote: &Quote{Name: "milk", Price: 3.50, Source: "first"}}
		second := &stubStrategy{name: "second", quote: &Quote{Name: "milk", Price: 9.99, Source: "second"}}
		r := NewResolver(0, first, second)

		quote := r.Price(context.Background(), ing, loc)
		if quote.Source != "first" {
			t.Errorf("Expected first strategy to win, got source %q", quote.Source)
		}
		if second.calls != 0 {
			t.Error("Expected second strategy to be skipped")
		}
	})

	t.Run("FallsThroughOnError", func(t *testing.T) {
		failing := &stubStrategy{name: "failing", err: errors.New("unavailable")}
		backup := &stubStrategy{name: "backup", quote: &Quote{Name: "milk", Price: 3.78, Source: "backup"}}
		r := NewResolver(0, failing, backup)

		quote := r.Price(context.Background(), ing, loc)
		if quote.Source != "backup" {
			t.Errorf("Expected backup strategy, got source %q", quote.Source)
		}
	})

	t.Run("NeverFails", func(t *testing.T) {
		failing := &stubStrategy{name: "failing", err: errors.New("unavailable")}
		r := NewResolver(0, failing)

		quote := r.Price(context.Background(), ing, loc)
		if quote.Source != "basic_fallback" {
			t.Errorf("Expected basic fallback, got source %q", quote.Source)
		}
		if quote.Price != 3.78 {
			t.Errorf("Expected shelf price 3.78 for milk, got %v", quote.Price)
		}
	})

	t.Run("CachesBySignature", func(t *testing.T) {
		counting := &stubStrategy{name: "counting", quote: &Quote{Name: "milk", Price: 3.50, Source: "counting"}}
		r := NewResolver(0, counting)

		r.Price(context.Background(), ing, loc)
		r.Price(context.Background(), ing, loc)
		if counting.calls != 1 {
			t.Errorf("Expected 1 strategy call after cache hit, got %d", counting.calls)
		}

		other := ing
		other.Amount = 2
		r.Price(context.Background(), other, loc)
		if counting.calls != 2 {
			t.Errorf("Expected different amount to miss the cache, got %d calls", counting.calls)
		}

		r.Clear()
		r.Price(context.Background(), ing, loc)
		if counting.calls != 3 {
			t.Errorf("Expected Clear to drop memoized quotes, got %d calls", counting.calls)
		}
	})

	t.Run("PacesConsecutiveMisses", func(t *testing.T) {
		s := &stubStrategy{name: "s", quote: &Quote{Price: 1.00, Source: "s"}}
		r := NewResolver(50*time.Millisecond, s)

		start := time.Now()
		r.Price(context.Background(), recipe.Ingredient{Name: "milk", Amount: 1, Unit: "gallon"}, loc)
		r.Price(context.Background(), recipe.Ingredient{Name: "eggs", Amount: 1, Unit: "dozen"}, loc)

		if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
			t.Errorf("Expected the second lookup to wait out the delay, finished in %v", elapsed)
		}
		if s.calls != 2 {
			t.Errorf("Expected 2 strategy calls, got %d", s.calls)
		}
	})

	t.Run("CacheHitSkipsDelay", func(t *testing.T) {
		s := &stubStrategy{name: "s", quote: &Quote{Price: 1.00, Source: "s"}}
		r := NewResolver(2*time.Second, s)

		r.Price(context.Background(), ing, loc)
		start := time.Now()
		r.Price(context.Background(), ing, loc)

		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("Expected a cached quote to return without waiting, took %v", elapsed)
		}
		if s.calls != 1 {
			t.Errorf("Expected 1 strategy call, got %d", s.calls)
		}
	})

	t.Run("PriceAllAlignsWithInput", func(t *testing.T) {
		s := &stubStrategy{name: "s", quote: &Quote{Price: 1.00, Source: "s"}}
		r := NewResolver(0, s)

		ings := []recipe.Ingredient{
			{Name: "milk", Amount: 1, Unit: "gallon"},
			{Name: "eggs", Amount: 1, Unit: "dozen"},
		}
		quotes, err := r.PriceAll(context.Background(), ings, loc)
		if err != nil {
			t.Fatalf("PriceAll failed: %v", err)
		}
		if len(quotes) != len(ings) {
			t.Fatalf("Expected %d quotes, got %d", len(ings), len(quotes))
		}
	})

	t.Run("PriceAllHonorsCancellation", func(t *testing.T) {
		s := &stubStrategy{name: "s", quote: &Quote{Price: 1.00, Source: "s"}}
		r := NewResolver(1_000_000_000, s) // 1s delay between items

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ings := []recipe.Ingredient{
			{Name: "milk", Amount: 1, Unit: "gallon"},
			{Name: "eggs", Amount: 1, Unit: "dozen"},
		}
		if _, err := r.PriceAll(ctx, ings, loc); err == nil {
			t.Error("Expected error from cancelled context")
		}
	})
}

func TestRegionalEstimateStrategy(t *testing.T) {
	strategy := NewRegionalEstimateStrategy()

	t.Run("AppliesZIPMultiplier", func(t *testing.T) {
		quote, err := strategy.Quote(context.Background(), recipe.Ingredient{Name: "milk"}, LocationFromZIP("98101"))
		if err != nil {
			t.Fatalf("Quote failed: %v", err)
		}
		// Washington ZIP range multiplies the 3.78 shelf price by 1.18.
		if quote.Price != 4.46 {
			t.Errorf("Expected 4.46, got %v", quote.Price)
		}
	})

	t.Run("RejectsMalformedZIP", func(t *testing.T) {
		_, err := strategy.Quote(context.Background(), recipe.Ingredient{Name: "milk"}, Location{ZIP: "not-a-zip"})
		if err == nil {
			t.Error("Expected error for malformed ZIP")
		}
	})
}

func TestBaseEstimate(t *testing.T) {
	if got := BaseEstimate("organic whole milk"); got != 3.78 {
		t.Errorf("Expected substring match on milk, got %v", got)
	}
	if got := BaseEstimate("star fruit"); got != defaultEstimatePrice {
		t.Errorf("Expected default estimate, got %v", got)
	}
}

func TestZIPMultiplier(t *testing.T) {
	cases := []struct {
		zip  string
		want float64
	}{
		{"10001", 1.15},
		{"90210", 1.25},
		{"98101", 1.18},
		{"97035", 1.12},
		{"80202", 1.08},
		{"30301", 0.88},
		{"40202", 0.92},
		{"50309", 0.90},
		{"75001", 0.95},
		{"60601", 1.0},
		{"bogus", 1.0},
	}
	for _, c := range cases {
		if got := ZIPMultiplier(c.zip); got != c.want {
			t.Errorf("ZIPMultiplier(%q) = %v, want %v", c.zip, got, c.want)
		}
	}
}

func TestLocationFromZIP(t *testing.T) {
	t.Run("KnownMetro", func(t *testing.T) {
		loc := LocationFromZIP("78701")
		if loc.City != "Austin" || loc.State != "TX" {
			t.Errorf("Expected Austin, TX, got %s, %s", loc.City, loc.State)
		}
		if loc.ZIP != "78701" {
			t.Errorf("Expected ZIP preserved, got %q", loc.ZIP)
		}
	})

	t.Run("RangeFallback", func(t *testing.T) {
		loc := LocationFromZIP("96001")
		if loc.State != "CA" {
			t.Errorf("Expected CA range fallback, got %s", loc.State)
		}
	})

	t.Run("NationalDefault", func(t *testing.T) {
		loc := LocationFromZIP("00501")
		if loc.Region != "National" {
			t.Errorf("Expected national default, got %s", loc.Region)
		}
	})
}

func TestRegionalStoreChains(t *testing.T) {
	tx := RegionalStoreChains("TX")
	if len(tx) == 0 || tx[0].Name != "H-E-B" {
		t.Errorf("Expected H-E-B first for TX, got %+v", tx)
	}
	def := RegionalStoreChains("MT")
	if len(def) != 3 || def[0].Name != "Walmart" {
		t.Errorf("Expected national chains for MT, got %+v", def)
	}
}
