package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/seed"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Force bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with sample data",
		Long: `Populate the store with the sample dataset: fifteen classics in the
inventory and 150 sales spread over the last 90 days.

Refuses to touch a non-empty store unless --force is given.

Example:
  bookstore seed
  bookstore seed --force`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite existing data")

	return cmd
}

func runSeed(opts *SeedOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	s, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	if !opts.Force && (len(s.eng.Books()) > 0 || len(s.eng.Sales()) > 0) {
		return NewExitError(ExitCommandError, "store is not empty (use --force to overwrite)")
	}

	books := seed.Inventory()
	sales := seed.Sales(todayUTC())
	if err := s.eng.Replace(books, sales); err != nil {
		return WrapExitError(ExitCommandError, "seed store", err)
	}

	if f.Format == "json" {
		return f.Success(map[string]int{"books": len(books), "sales": len(sales)})
	}
	return f.Success(fmt.Sprintf("Seeded %d books and %d sales", len(books), len(sales)))
}

// todayUTC is today's date at day granularity.
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
