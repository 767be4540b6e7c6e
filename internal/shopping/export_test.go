package shopping

import (
	"strings"
	"testing"
	"time"
)

func sampleList() ShoppingList {
	return ShoppingList{
		ID: "plan-1-list",
		Categories: map[string][]ConsolidatedItem{
			"produce": {
				{Name: "onion", Amount: 2, Unit: "whole", Category: "produce", Price: 1.18, UsedIn: []string{"Chili", "Soup"}},
			},
			"meat": {
				{
					Name: "ground beef", Amount: 3, Unit: "lbs", Category: "meat", Price: 14.94,
					UsedIn: []string{"Chili"},
					Bulk:   BulkOption{Available: true, BulkSize: 3, BulkPrice: 12.70, Savings: 2.24, Recommended: true},
				},
			},
		},
		Totals: Totals{
			TotalCost:        16.12,
			TotalItems:       2,
			AveragePerItem:   8.06,
			PotentialSavings: 2.24,
			CategoryBreakdown: map[string]CategoryTotal{
				"produce": {Name: "Fresh Produce", Total: 1.18, ItemCount: 1},
				"meat":    {Name: "Meat & Seafood", Total: 14.94, ItemCount: 1, Savings: 2.24},
			},
		},
		MealCount:   2,
		GeneratedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestPrintable(t *testing.T) {
	out := Printable(sampleList())

	for _, want := range []string{
		"FAMILY BUDGET MEALS - SHOPPING LIST",
		"Generated: 2026-03-14",
		"Location: National Average",
		"FRESH PRODUCE",
		"[ ] 2 whole onion - $1.18",
		"[ ] 3 lbs ground beef - $14.94 (Bulk: $12.70)",
		"TOTAL ESTIMATED COST: $16.12",
		"Potential Bulk Savings: $2.24",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Printable output missing %q\n%s", want, out)
		}
	}

	// Produce leads meat in the walk order.
	if strings.Index(out, "FRESH PRODUCE") > strings.Index(out, "MEAT & SEAFOOD") {
		t.Error("Expected produce section before meat")
	}
}

func TestCSV(t *testing.T) {
	out, err := CSV(sampleList())
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Category,Item,Amount,Unit,Price,Bulk Available,Bulk Price,Used In Meals" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Fresh Produce,onion,2,whole,1.18,No,,Chili; Soup") {
		t.Errorf("Unexpected produce row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "ground beef,3,lbs,14.94,Yes,12.70,Chili") {
		t.Errorf("Unexpected meat row: %q", lines[2])
	}
}

func TestCheckBulkDeal(t *testing.T) {
	t.Run("TriggersNearBulkSize", func(t *testing.T) {
		// 2.5lbs is within 70% of the 3lb bulk pack.
		opt := checkBulkDeal("ground beef", 2.5, 12.00)
		if !opt.Available {
			t.Fatal("Expected bulk deal to be available")
		}
		if opt.BulkPrice != 10.20 {
			t.Errorf("Expected bulk price 10.20, got %v", opt.BulkPrice)
		}
		if opt.Savings != 1.80 {
			t.Errorf("Expected savings 1.80, got %v", opt.Savings)
		}
		if !opt.Recommended {
			t.Error("Expected recommendation for savings over a dollar")
		}
	})

	t.Run("BelowThresholdNotOffered", func(t *testing.T) {
		if opt := checkBulkDeal("ground beef", 2, 10.00); opt.Available {
			t.Error("Expected no deal below 70% of bulk size")
		}
	})

	t.Run("SmallSavingsNotRecommended", func(t *testing.T) {
		opt := checkBulkDeal("onion", 3, 2.00)
		if !opt.Available {
			t.Fatal("Expected bulk deal to be available")
		}
		if opt.Recommended {
			t.Error("Expected no recommendation for savings under a dollar")
		}
	})

	t.Run("UnknownItemNoDeal", func(t *testing.T) {
		if opt := checkBulkDeal("dragonfruit", 100, 50.00); opt.Available {
			t.Error("Expected no deal for unlisted item")
		}
	})
}
