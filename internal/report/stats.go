package report

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
)

// growthWindow is the number of sales compared at each end of the ledger
// when estimating the growth rate.
const growthWindow = 5

// RevenueStats holds descriptive statistics over per-sale revenue.
type RevenueStats struct {
	Total  float64
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
	Max    float64
	Min    float64
}

// QuantityStats holds descriptive statistics over per-sale quantity.
type QuantityStats struct {
	Total         int
	MeanPerSale   float64
	MaxSingleSale int
}

// SalesStats bundles the full statistical analysis of the ledger.
type SalesStats struct {
	Revenue  RevenueStats
	Quantity QuantityStats

	// GrowthRatePct compares the mean revenue of the most recent sales
	// against the earliest ones (up to growthWindow each). Only meaningful
	// when HasGrowthRate is true (at least two sales).
	GrowthRatePct float64
	HasGrowthRate bool
}

// ComputeSalesStats analyzes the ledger. Returns ok=false when there are no
// sales to analyze.
//
// Statistics are computed on float64 values; exact decimals only matter for
// the ledger itself, not for derived analysis.
func ComputeSalesStats(sales []ledger.Sale) (SalesStats, bool) {
	if len(sales) == 0 {
		return SalesStats{}, false
	}

	revenues := make([]float64, len(sales))
	quantities := make([]float64, len(sales))
	maxQty := 0
	totalQty := 0
	for i, s := range sales {
		revenues[i] = s.TotalRevenue.InexactFloat64()
		quantities[i] = float64(s.QuantitySold)
		totalQty += s.QuantitySold
		if s.QuantitySold > maxQty {
			maxQty = s.QuantitySold
		}
	}

	sorted := make([]float64, len(revenues))
	copy(sorted, revenues)
	sort.Float64s(sorted)

	stats := SalesStats{
		Revenue: RevenueStats{
			Total:  floats.Sum(revenues),
			Mean:   stat.Mean(revenues, nil),
			Median: median(sorted),
			StdDev: stat.PopStdDev(revenues, nil),
			Max:    floats.Max(revenues),
			Min:    floats.Min(revenues),
		},
		Quantity: QuantityStats{
			Total:         totalQty,
			MeanPerSale:   stat.Mean(quantities, nil),
			MaxSingleSale: maxQty,
		},
	}

	if len(revenues) > 1 {
		window := growthWindow
		if len(revenues) < window {
			window = len(revenues)
		}
		older := stat.Mean(revenues[:window], nil)
		recent := stat.Mean(revenues[len(revenues)-window:], nil)
		if older != 0 {
			stats.GrowthRatePct = (recent - older) / older * 100
			stats.HasGrowthRate = true
		}
	}

	return stats, true
}

// median computes the conventional median of an already-sorted slice: the
// middle element, or the mean of the two middle elements for an even count.
// gonum's Quantile cumulants interpolate the empirical CDF differently, so
// this is done directly.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
