// Package chart renders the sales dashboard as a standalone HTML page.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/report"
)

// ErrNoSales is returned when there is nothing to chart.
var ErrNoSales = errors.New("no sales recorded, nothing to chart")

// WriteDashboard renders the dashboard page to w: revenue by genre (bar),
// monthly revenue (line), and revenue share by genre (pie).
func WriteDashboard(w io.Writer, books []inventory.Book, sales []ledger.Sale) error {
	if len(sales) == 0 {
		return ErrNoSales
	}

	trends := report.BuildTrends(books, sales)

	page := components.NewPage()
	page.AddCharts(
		revenueByGenre(trends.ByGenre),
		monthlyRevenue(trends.ByMonth),
		genreShare(trends.ByGenre),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// WriteDashboardFile renders the dashboard to an HTML file at path.
func WriteDashboardFile(path string, books []inventory.Book, sales []ledger.Sale) error {
	if len(sales) == 0 {
		return ErrNoSales
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dashboard file: %w", err)
	}
	if err := WriteDashboard(f, books, sales); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close dashboard file: %w", err)
	}
	return nil
}

func revenueByGenre(aggs []report.Aggregate) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Revenue by Genre",
			Subtitle: "Total revenue per genre across all recorded sales",
		}),
	)

	keys := make([]string, len(aggs))
	data := make([]opts.BarData, len(aggs))
	for i, a := range aggs {
		keys[i] = a.Key
		data[i] = opts.BarData{Value: a.Revenue.InexactFloat64()}
	}
	bar.SetXAxis(keys).AddSeries("Revenue", data)
	return bar
}

func monthlyRevenue(aggs []report.Aggregate) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Monthly Revenue",
			Subtitle: "Revenue per calendar month",
		}),
	)

	months := make([]string, len(aggs))
	data := make([]opts.LineData, len(aggs))
	for i, a := range aggs {
		months[i] = a.Key
		data[i] = opts.LineData{Value: a.Revenue.InexactFloat64()}
	}
	line.SetXAxis(months).AddSeries("Revenue", data)
	return line
}

func genreShare(aggs []report.Aggregate) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Revenue Share by Genre",
			Subtitle: "Each genre's share of total revenue",
		}),
	)

	data := make([]opts.PieData, len(aggs))
	for i, a := range aggs {
		data[i] = opts.PieData{Name: a.Key, Value: a.Revenue.InexactFloat64()}
	}
	pie.AddSeries("Revenue", data)
	return pie
}
