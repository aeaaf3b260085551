package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/chart"
)

// ChartOptions holds flags for the chart command.
type ChartOptions struct {
	*RootOptions
	Output string
}

// NewChartCommand creates the chart command.
func NewChartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the sales dashboard as an HTML page",
		Long: `Render the sales dashboard as a standalone HTML page: revenue by
genre, monthly revenue, and revenue share by genre.

The output path comes from the config file unless --output overrides it.

Example:
  bookstore chart
  bookstore chart --output /tmp/dashboard.html`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Output, "output", "", "dashboard HTML file path")

	return cmd
}

func runChart(opts *ChartOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	s, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	output := opts.Output
	if output == "" {
		output = s.cfg.Chart.Output
	}

	if err := chart.WriteDashboardFile(output, s.eng.Books(), s.eng.Sales()); err != nil {
		if errors.Is(err, chart.ErrNoSales) {
			f.Error("NO_SALES", err.Error(), nil)
			return WrapExitError(ExitFailure, err.Error(), err)
		}
		return WrapExitError(ExitCommandError, "render dashboard", err)
	}

	if f.Format == "json" {
		return f.Success(map[string]string{"dashboard": output})
	}
	return f.Success(fmt.Sprintf("Dashboard saved as %q", output))
}
