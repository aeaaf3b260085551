package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a book from the inventory",
		Long: `Remove a book from the inventory.

Historical sales of the title stay in the ledger.

Example:
  bookstore remove "The Hobbit"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, cmd, args)
		},
	}
}

func runRemove(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := newFormatter(opts, cmd)

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.eng.RemoveBook(args[0]); err != nil {
		return reportOpError(f, err)
	}

	if f.Format == "json" {
		return f.Success(map[string]string{"removed": args[0]})
	}
	return f.Success(fmt.Sprintf("Removed %q from the inventory", args[0]))
}
