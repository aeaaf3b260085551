package report

import (
	"fmt"
	"io"
	"strings"
)

// RenderSummary writes the combined inventory and sales report as text.
func RenderSummary(w io.Writer, s Summary) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "BOOKSTORE INVENTORY AND SALES REPORT")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "INVENTORY SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	if s.UniqueTitles == 0 {
		fmt.Fprintln(w, "No books in inventory")
	} else {
		fmt.Fprintf(w, "Total Books in Stock: %d\n", s.TotalStock)
		fmt.Fprintf(w, "Total Inventory Value: $%s\n", s.InventoryValue.StringFixed(2))
		fmt.Fprintf(w, "Average Book Price: $%s\n", s.AveragePrice.StringFixed(2))
		fmt.Fprintf(w, "Number of Unique Titles: %d\n", s.UniqueTitles)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Top %d Most Expensive Books:\n", topN)
		for _, b := range s.MostExpensive {
			fmt.Fprintf(w, "  - %s by %s - $%s\n", b.Title, b.Author, b.Price.StringFixed(2))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "SALES SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	if s.Transactions == 0 {
		fmt.Fprintln(w, "No sales recorded")
		return
	}
	fmt.Fprintf(w, "Total Revenue: $%s\n", s.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "Total Books Sold: %d\n", s.UnitsSold)
	fmt.Fprintf(w, "Average Sale Value: $%s\n", s.AverageSale.StringFixed(2))
	fmt.Fprintf(w, "Number of Transactions: %d\n", s.Transactions)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Top %d Best Selling Books:\n", topN)
	for _, b := range s.BestSellers {
		fmt.Fprintf(w, "  - %s: %d copies sold\n", b.Title, b.Units)
	}
}

// RenderStats writes the descriptive statistics as text.
func RenderStats(w io.Writer, s SalesStats) {
	fmt.Fprintln(w, "SALES STATISTICS")
	fmt.Fprintln(w, strings.Repeat("-", 30))

	fmt.Fprintln(w, "Revenue Analysis:")
	fmt.Fprintf(w, "  Total Revenue: $%.2f\n", s.Revenue.Total)
	fmt.Fprintf(w, "  Average Revenue per Sale: $%.2f\n", s.Revenue.Mean)
	fmt.Fprintf(w, "  Median Revenue per Sale: $%.2f\n", s.Revenue.Median)
	fmt.Fprintf(w, "  Revenue Standard Deviation: $%.2f\n", s.Revenue.StdDev)
	fmt.Fprintf(w, "  Maximum Sale: $%.2f\n", s.Revenue.Max)
	fmt.Fprintf(w, "  Minimum Sale: $%.2f\n", s.Revenue.Min)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Quantity Analysis:")
	fmt.Fprintf(w, "  Total Books Sold: %d\n", s.Quantity.Total)
	fmt.Fprintf(w, "  Average Books per Sale: %.2f\n", s.Quantity.MeanPerSale)
	fmt.Fprintf(w, "  Most Books in Single Sale: %d\n", s.Quantity.MaxSingleSale)

	if s.HasGrowthRate {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Sales Growth Rate: %.2f%%\n", s.GrowthRatePct)
	}
}

// RenderTrends writes the grouped sales breakdowns as text.
func RenderTrends(w io.Writer, t Trends) {
	fmt.Fprintln(w, "SALES TRENDS")
	fmt.Fprintln(w, strings.Repeat("-", 30))

	renderAggregates(w, "Sales by Genre:", t.ByGenre)
	fmt.Fprintln(w)
	renderAggregates(w, "Sales by Author:", t.ByAuthor)
	fmt.Fprintln(w)
	renderAggregates(w, "Monthly Sales:", t.ByMonth)
}

func renderAggregates(w io.Writer, heading string, aggs []Aggregate) {
	fmt.Fprintln(w, heading)
	if len(aggs) == 0 {
		fmt.Fprintln(w, "  (no data)")
		return
	}
	for _, a := range aggs {
		fmt.Fprintf(w, "  %s: %d units, $%s\n", a.Key, a.Units, a.Revenue.StringFixed(2))
	}
}
