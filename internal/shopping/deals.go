package shopping

import "strings"

type bulkDeal struct {
	BulkSize float64
	Savings  float64
}

// Bulk purchase sizes worth flagging, with their typical discount.
var bulkDeals = map[string]bulkDeal{
	"ground beef":    {BulkSize: 3, Savings: 0.15},
	"chicken breast": {BulkSize: 5, Savings: 0.20},
	"chicken thighs": {BulkSize: 5, Savings: 0.18},
	"rice":           {BulkSize: 10, Savings: 0.25},
	"flour":          {BulkSize: 10, Savings: 0.20},
	"pasta":          {BulkSize: 5, Savings: 0.15},
	"potatoes":       {BulkSize: 5, Savings: 0.12},
	"onion":          {BulkSize: 3, Savings: 0.10},
}

// checkBulkDeal flags items close enough to a bulk size (70% or more) for
// the larger package to make sense, recommending it when the saving tops a
// dollar.
func checkBulkDeal(name string, amount, price float64) BulkOption {
	deal, ok := bulkDeals[strings.ToLower(name)]
	if !ok || amount < deal.BulkSize*0.7 {
		return BulkOption{Available: false}
	}

	bulkPrice := price * (1 - deal.Savings)
	savings := price - bulkPrice

	return BulkOption{
		Available:   true,
		BulkSize:    deal.BulkSize,
		BulkPrice:   round2(bulkPrice),
		Savings:     round2(savings),
		Recommended: savings > 1.00,
	}
}
