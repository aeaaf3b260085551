package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/chart"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/engine"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/report"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/seed"
)

// NewMenuCommand creates the interactive menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long: `Run the interactive menu loop.

A fresh store (no books, no sales) is seeded with the sample dataset
first. Rejected operations print an error and return to the menu; they
never end the session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(rootOpts, cmd)
		},
	}
}

func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	if len(s.eng.Books()) == 0 && len(s.eng.Sales()) == 0 {
		if err := s.eng.Replace(seed.Inventory(), seed.Sales(todayUTC())); err != nil {
			return WrapExitError(ExitCommandError, "seed store", err)
		}
		fmt.Fprintln(out, "Sample data created!")
	}

	m := &menu{
		eng:      s.eng,
		chartOut: s.cfg.Chart.Output,
		in:       bufio.NewScanner(cmd.InOrStdin()),
		out:      out,
	}
	return m.run()
}

type menu struct {
	eng      *engine.Engine
	chartOut string
	in       *bufio.Scanner
	out      io.Writer
}

func (m *menu) run() error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Enter your choice (1-10): ")
		if !ok {
			// Input closed; treat like exit.
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}

		switch choice {
		case "1":
			m.addBook()
		case "2":
			m.updateQuantity()
		case "3":
			m.recordSale()
		case "4":
			m.removeBook()
		case "5":
			m.showInventory()
		case "6":
			report.RenderSummary(m.out, report.BuildSummary(m.eng.Books(), m.eng.Sales()))
		case "7":
			m.showStats()
		case "8":
			report.RenderTrends(m.out, report.BuildTrends(m.eng.Books(), m.eng.Sales()))
		case "9":
			m.createChart()
		case "10":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a number from 1 to 10.")
		}
	}
}

func (m *menu) printMenu() {
	rule := strings.Repeat("-", 50)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, "BOOKSTORE MANAGEMENT SYSTEM")
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, "1. Add New Book")
	fmt.Fprintln(m.out, "2. Update Book Quantity")
	fmt.Fprintln(m.out, "3. Record Sale")
	fmt.Fprintln(m.out, "4. Remove Book")
	fmt.Fprintln(m.out, "5. View Inventory")
	fmt.Fprintln(m.out, "6. Generate Report")
	fmt.Fprintln(m.out, "7. Sales Statistics")
	fmt.Fprintln(m.out, "8. Sales Trends")
	fmt.Fprintln(m.out, "9. Create Visualizations")
	fmt.Fprintln(m.out, "10. Exit")
	fmt.Fprintln(m.out, rule)
}

// prompt reads one trimmed input line. ok is false once input is exhausted.
func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// report prints an operation error without ending the session.
func (m *menu) report(err error) {
	var opErr *engine.OpError
	if errors.As(err, &opErr) {
		fmt.Fprintf(m.out, "Error: %s\n", opErr.Error())
		return
	}
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func (m *menu) addBook() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "ADD NEW BOOK")
	title, ok := m.prompt("Enter book title: ")
	if !ok {
		return
	}
	author, ok := m.prompt("Enter author name: ")
	if !ok {
		return
	}
	genre, ok := m.prompt("Enter genre: ")
	if !ok {
		return
	}
	price, ok := m.prompt("Enter price: ")
	if !ok {
		return
	}
	quantity, ok := m.prompt("Enter quantity: ")
	if !ok {
		return
	}

	book, err := m.eng.AddBook(title, author, genre, price, quantity)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Added %q by %s\n", book.Title, book.Author)
}

func (m *menu) updateQuantity() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "UPDATE BOOK QUANTITY")
	title, ok := m.prompt("Enter book title: ")
	if !ok {
		return
	}
	quantity, ok := m.prompt("Enter new quantity: ")
	if !ok {
		return
	}

	if err := m.eng.UpdateInventory(title, quantity); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Updated %q\n", title)
}

func (m *menu) recordSale() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "RECORD SALE")
	title, ok := m.prompt("Enter book title: ")
	if !ok {
		return
	}
	quantity, ok := m.prompt("Enter quantity sold: ")
	if !ok {
		return
	}

	sale, err := m.eng.RecordSale(title, quantity)
	if err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Sold %d x %q for $%s\n",
		sale.QuantitySold, sale.Title, sale.TotalRevenue.StringFixed(2))
}

func (m *menu) removeBook() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "REMOVE BOOK")
	title, ok := m.prompt("Enter book title to remove: ")
	if !ok {
		return
	}

	if err := m.eng.RemoveBook(title); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Removed %q\n", title)
}

func (m *menu) showInventory() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "CURRENT INVENTORY")
	fmt.Fprintln(m.out, strings.Repeat("-", 80))
	renderInventory(m.out, m.eng.Books())
}

func (m *menu) showStats() {
	stats, ok := report.ComputeSalesStats(m.eng.Sales())
	if !ok {
		fmt.Fprintln(m.out, "No sales data available for analysis")
		return
	}
	report.RenderStats(m.out, stats)
}

func (m *menu) createChart() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Generating visualizations...")
	if err := chart.WriteDashboardFile(m.chartOut, m.eng.Books(), m.eng.Sales()); err != nil {
		m.report(err)
		return
	}
	fmt.Fprintf(m.out, "Visualization saved as %q\n", m.chartOut)
}
