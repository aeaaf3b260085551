package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSellCommand creates the sell command.
func NewSellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <title> <quantity>",
		Short: "Record a sale",
		Long: `Record a sale of one title.

The sale is dated today and priced at the current inventory price. Stock
is decremented and one transaction is appended to the ledger, or the
sale is rejected and nothing changes.

Example:
  bookstore sell "The Hobbit" 2`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSell(rootOpts, cmd, args)
		},
	}
}

func runSell(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	sale, err := s.eng.RecordSale(args[0], args[1])
	if err != nil {
		return reportOpError(f, err)
	}

	if f.Format == "json" {
		return f.Success(toSaleView(sale))
	}
	return f.Success(fmt.Sprintf("Sold %d x %q for $%s",
		sale.QuantitySold, sale.Title, sale.TotalRevenue.StringFixed(2)))
}
