package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/report"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Analyze sales with descriptive statistics",
		Long: `Analyze the sales ledger with descriptive statistics: revenue mean,
median, spread and extremes, quantity breakdowns, and the growth rate of
recent sales against the earliest ones.

Example:
  bookstore stats`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	stats, ok := report.ComputeSalesStats(s.eng.Sales())
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No sales data available for analysis")
		return nil
	}

	if f.Format == "json" {
		return f.Success(stats)
	}

	report.RenderStats(cmd.OutOrStdout(), stats)
	return nil
}
