package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the day-granularity date format used in the sales table.
const DateLayout = "2006-01-02"

// Sale is a single recorded sale transaction.
type Sale struct {
	Date         time.Time       `json:"date"`
	Title        string          `json:"title"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// Ledger is the append-only sequence of sales.
//
// Not safe for concurrent use; the engine serializes access.
type Ledger struct {
	sales []Sale
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// FromSales builds a ledger from an already-loaded sale list, preserving
// the given order.
func FromSales(sales []Sale) *Ledger {
	l := &Ledger{sales: make([]Sale, len(sales))}
	copy(l.sales, sales)
	return l
}

// Append records a sale at the end of the ledger.
func (l *Ledger) Append(s Sale) {
	l.sales = append(l.sales, s)
}

// All returns a copy of every sale in insertion order.
func (l *Ledger) All() []Sale {
	out := make([]Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

// Len returns the number of recorded sales.
func (l *Ledger) Len() int {
	return len(l.sales)
}
