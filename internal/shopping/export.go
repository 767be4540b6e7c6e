package shopping

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// Printable renders the shopping list as a checklist suitable for printing.
func Printable(list ShoppingList) string {
	var sb strings.Builder

	sb.WriteString("FAMILY BUDGET MEALS - SHOPPING LIST\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", list.GeneratedAt.Format("2006-01-02")))
	location := list.Location
	if location == "" {
		location = "National Average"
	}
	sb.WriteString(fmt.Sprintf("Location: %s\n", location))
	sb.WriteString(fmt.Sprintf("Estimated Total: $%.2f\n\n", list.Totals.TotalCost))

	for _, key := range CategoryOrder {
		items := list.Categories[key]
		if len(items) == 0 {
			continue
		}

		name := CategoryNames[key]
		sb.WriteString(strings.ToUpper(name) + "\n")
		sb.WriteString(strings.Repeat("-", len(name)+5) + "\n")

		for _, item := range items {
			sb.WriteString(fmt.Sprintf("[ ] %s %s %s - $%.2f", formatAmount(item.Amount), item.Unit, item.Name, item.Price))
			if item.Bulk.Available && item.Bulk.Recommended {
				sb.WriteString(fmt.Sprintf(" (Bulk: $%.2f)", item.Bulk.BulkPrice))
			}
			sb.WriteString("\n")
		}

		if breakdown, ok := list.Totals.CategoryBreakdown[key]; ok {
			sb.WriteString(fmt.Sprintf("Subtotal: $%.2f\n\n", breakdown.Total))
		}
	}

	sb.WriteString(fmt.Sprintf("TOTAL ESTIMATED COST: $%.2f\n", list.Totals.TotalCost))
	if list.Totals.PotentialSavings > 0 {
		sb.WriteString(fmt.Sprintf("Potential Bulk Savings: $%.2f\n", list.Totals.PotentialSavings))
	}

	return sb.String()
}

func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return strconv.FormatInt(int64(amount), 10)
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// CSV renders the shopping list as spreadsheet rows, one item per line.
func CSV(list ShoppingList) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"Category", "Item", "Amount", "Unit", "Price", "Bulk Available", "Bulk Price", "Used In Meals"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, key := range CategoryOrder {
		for _, item := range list.Categories[key] {
			bulkAvailable := "No"
			bulkPrice := ""
			if item.Bulk.Available {
				bulkAvailable = "Yes"
				bulkPrice = fmt.Sprintf("%.2f", item.Bulk.BulkPrice)
			}

			row := []string{
				CategoryNames[key],
				item.Name,
				formatAmount(item.Amount),
				item.Unit,
				fmt.Sprintf("%.2f", item.Price),
				bulkAvailable,
				bulkPrice,
				strings.Join(item.UsedIn, "; "),
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return sb.String(), nil
}
