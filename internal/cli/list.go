package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current inventory",
		Long: `Show the current inventory in insertion order.

Example:
  bookstore list
  bookstore list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	books := s.eng.Books()

	if f.Format == "json" {
		views := make([]bookView, len(books))
		for i, b := range books {
			views[i] = toBookView(b)
		}
		return f.Success(views)
	}

	renderInventory(cmd.OutOrStdout(), books)
	return nil
}

func renderInventory(w io.Writer, books []inventory.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books in inventory")
		return
	}

	fmt.Fprintf(w, "%-30s %-22s %-18s %10s %9s\n",
		"Title", "Author", "Genre", "Price", "Quantity")
	for _, b := range books {
		fmt.Fprintf(w, "%-30s %-22s %-18s %10s %9d\n",
			b.Title, b.Author, b.Genre, "$"+b.Price.StringFixed(2), b.Quantity)
	}
}
