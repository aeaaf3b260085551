package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
)

// monthLayout keys monthly aggregates ("2026-08").
const monthLayout = "2006-01"

// Aggregate is one row of a grouped sales breakdown.
type Aggregate struct {
	Key     string
	Units   int
	Revenue decimal.Decimal
}

// Trends bundles the grouped sales breakdowns.
type Trends struct {
	ByGenre  []Aggregate
	ByAuthor []Aggregate
	ByMonth  []Aggregate
}

// BuildTrends groups the ledger by genre, author, and calendar month.
//
// Genre and author come from joining each sale to the current inventory by
// canonical title key; sales whose title no longer exists in the inventory
// (removed books) are skipped in those two groupings, but still counted in
// the monthly breakdown.
func BuildTrends(books []inventory.Book, sales []ledger.Sale) Trends {
	byKey := make(map[string]inventory.Book, len(books))
	for _, b := range books {
		byKey[inventory.TitleKey(b.Title)] = b
	}

	genres := make(map[string]*Aggregate)
	authors := make(map[string]*Aggregate)
	months := make(map[string]*Aggregate)

	for _, s := range sales {
		if b, ok := byKey[inventory.TitleKey(s.Title)]; ok {
			accumulate(genres, b.Genre, s)
			accumulate(authors, b.Author, s)
		}
		accumulate(months, s.Date.Format(monthLayout), s)
	}

	return Trends{
		ByGenre:  sortedAggregates(genres),
		ByAuthor: sortedAggregates(authors),
		ByMonth:  sortedAggregates(months),
	}
}

func accumulate(m map[string]*Aggregate, key string, s ledger.Sale) {
	agg, ok := m[key]
	if !ok {
		agg = &Aggregate{Key: key, Revenue: decimal.Zero}
		m[key] = agg
	}
	agg.Units += s.QuantitySold
	agg.Revenue = agg.Revenue.Add(s.TotalRevenue)
}

func sortedAggregates(m map[string]*Aggregate) []Aggregate {
	out := make([]Aggregate, 0, len(m))
	for _, agg := range m {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
