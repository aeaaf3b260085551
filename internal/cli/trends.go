package cli

import (
	"github.com/spf13/cobra"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/report"
)

// NewTrendsCommand creates the trends command.
func NewTrendsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Break down sales by genre, author, and month",
		Long: `Break down the sales ledger by genre, author, and calendar month.

Genre and author come from the current inventory; sales of removed
titles only appear in the monthly breakdown.

Example:
  bookstore trends`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrends(rootOpts, cmd)
		},
	}
}

func runTrends(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	trends := report.BuildTrends(s.eng.Books(), s.eng.Sales())

	if f.Format == "json" {
		return f.Success(trendsView(trends))
	}

	report.RenderTrends(cmd.OutOrStdout(), trends)
	return nil
}

type aggregateJSON struct {
	Key     string `json:"key"`
	Units   int    `json:"units"`
	Revenue string `json:"revenue"`
}

type trendsJSON struct {
	ByGenre  []aggregateJSON `json:"by_genre"`
	ByAuthor []aggregateJSON `json:"by_author"`
	ByMonth  []aggregateJSON `json:"by_month"`
}

func trendsView(t report.Trends) trendsJSON {
	conv := func(aggs []report.Aggregate) []aggregateJSON {
		out := make([]aggregateJSON, len(aggs))
		for i, a := range aggs {
			out[i] = aggregateJSON{Key: a.Key, Units: a.Units, Revenue: a.Revenue.StringFixed(2)}
		}
		return out
	}
	return trendsJSON{
		ByGenre:  conv(t.ByGenre),
		ByAuthor: conv(t.ByAuthor),
		ByMonth:  conv(t.ByMonth),
	}
}
