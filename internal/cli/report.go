package cli

import (
	"github.com/spf13/cobra"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/report"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate the inventory and sales report",
		Long: `Generate the combined inventory and sales report: stock totals,
inventory value, top titles by price, revenue totals, and best sellers.

Example:
  bookstore report`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, cmd)
		},
	}
}

func runReport(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	summary := report.BuildSummary(s.eng.Books(), s.eng.Sales())

	if f.Format == "json" {
		return f.Success(summaryView(summary))
	}

	report.RenderSummary(cmd.OutOrStdout(), summary)
	return nil
}

type summaryJSON struct {
	TotalStock     int        `json:"total_stock"`
	InventoryValue string     `json:"inventory_value"`
	AveragePrice   string     `json:"average_price"`
	UniqueTitles   int        `json:"unique_titles"`
	MostExpensive  []bookView `json:"most_expensive"`

	TotalRevenue string           `json:"total_revenue"`
	UnitsSold    int              `json:"units_sold"`
	AverageSale  string           `json:"average_sale"`
	Transactions int              `json:"transactions"`
	BestSellers  []titleUnitsJSON `json:"best_sellers"`
}

type titleUnitsJSON struct {
	Title string `json:"title"`
	Units int    `json:"units"`
}

func summaryView(s report.Summary) summaryJSON {
	out := summaryJSON{
		TotalStock:     s.TotalStock,
		InventoryValue: s.InventoryValue.StringFixed(2),
		AveragePrice:   s.AveragePrice.StringFixed(2),
		UniqueTitles:   s.UniqueTitles,
		TotalRevenue:   s.TotalRevenue.StringFixed(2),
		UnitsSold:      s.UnitsSold,
		AverageSale:    s.AverageSale.StringFixed(2),
		Transactions:   s.Transactions,
	}
	for _, b := range s.MostExpensive {
		out.MostExpensive = append(out.MostExpensive, toBookView(b))
	}
	for _, t := range s.BestSellers {
		out.BestSellers = append(out.BestSellers, titleUnitsJSON{Title: t.Title, Units: t.Units})
	}
	return out
}
