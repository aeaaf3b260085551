package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
)

// topN limits the "top" listings in the summary.
const topN = 5

// Summary aggregates the inventory and sales sides of the business report.
type Summary struct {
	// Inventory side.
	TotalStock     int
	InventoryValue decimal.Decimal
	AveragePrice   decimal.Decimal
	UniqueTitles   int
	MostExpensive  []inventory.Book

	// Sales side.
	TotalRevenue decimal.Decimal
	UnitsSold    int
	AverageSale  decimal.Decimal
	Transactions int
	BestSellers  []TitleUnits
}

// TitleUnits pairs a title with a unit count.
type TitleUnits struct {
	Title string
	Units int
}

// BuildSummary computes the full report summary from store snapshots.
func BuildSummary(books []inventory.Book, sales []ledger.Sale) Summary {
	s := Summary{
		InventoryValue: decimal.Zero,
		AveragePrice:   decimal.Zero,
		TotalRevenue:   decimal.Zero,
		AverageSale:    decimal.Zero,
		UniqueTitles:   len(books),
		Transactions:   len(sales),
	}

	priceSum := decimal.Zero
	for _, b := range books {
		s.TotalStock += b.Quantity
		s.InventoryValue = s.InventoryValue.Add(b.Price.Mul(decimal.NewFromInt(int64(b.Quantity))))
		priceSum = priceSum.Add(b.Price)
	}
	if len(books) > 0 {
		s.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(len(books))))
		s.MostExpensive = mostExpensive(books)
	}

	for _, sale := range sales {
		s.UnitsSold += sale.QuantitySold
		s.TotalRevenue = s.TotalRevenue.Add(sale.TotalRevenue)
	}
	if len(sales) > 0 {
		s.AverageSale = s.TotalRevenue.Div(decimal.NewFromInt(int64(len(sales))))
		s.BestSellers = bestSellers(sales)
	}

	return s
}

func mostExpensive(books []inventory.Book) []inventory.Book {
	sorted := make([]inventory.Book, len(books))
	copy(sorted, books)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Price.Equal(sorted[j].Price) {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		}
		return sorted[i].Title < sorted[j].Title
	})
	if len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}

func bestSellers(sales []ledger.Sale) []TitleUnits {
	units := make(map[string]int)
	display := make(map[string]string)
	for _, sale := range sales {
		key := inventory.TitleKey(sale.Title)
		units[key] += sale.QuantitySold
		if _, ok := display[key]; !ok {
			display[key] = sale.Title
		}
	}

	out := make([]TitleUnits, 0, len(units))
	for key, n := range units {
		out = append(out, TitleUnits{Title: display[key], Units: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Units != out[j].Units {
			return out[i].Units > out[j].Units
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
