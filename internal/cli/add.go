package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <author> <genre> <price> <quantity>",
		Short: "Add a new book to the inventory",
		Long: `Add a new book to the inventory.

Price and quantity are passed as written; the engine validates them.
The title must not already exist (titles match case-insensitively).

Example:
  bookstore add "The Hobbit" "J.R.R. Tolkien" Fantasy 15.99 12`,
		Args:          cobra.ExactArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args)
		},
	}
}

func runAdd(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	book, err := s.eng.AddBook(args[0], args[1], args[2], args[3], args[4])
	if err != nil {
		return reportOpError(f, err)
	}

	if f.Format == "json" {
		return f.Success(toBookView(book))
	}
	return f.Success(fmt.Sprintf("Added %q by %s (%d copies at $%s)",
		book.Title, book.Author, book.Quantity, book.Price.StringFixed(2)))
}
