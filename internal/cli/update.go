package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <title> <quantity>",
		Short: "Overwrite the stock count for a book",
		Long: `Overwrite the stock count for an existing book.

The quantity replaces the current count; zero marks the title as out of
stock without removing it.

Example:
  bookstore update "The Hobbit" 25`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(rootOpts, cmd, args)
		},
	}
}

func runUpdate(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.eng.UpdateInventory(args[0], args[1]); err != nil {
		return reportOpError(f, err)
	}

	book, _ := s.eng.Find(args[0])
	if f.Format == "json" {
		return f.Success(toBookView(book))
	}
	return f.Success(fmt.Sprintf("Updated %q to %d copies", book.Title, book.Quantity))
}
