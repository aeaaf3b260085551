package cli

import (
	"errors"
	"io"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/config"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/engine"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/storage"
)

// session bundles the loaded engine with the configuration that produced it.
// Close releases the backend when it holds resources (SQLite).
type session struct {
	cfg    config.Config
	eng    *engine.Engine
	closer io.Closer
}

// openSession loads the configuration, opens the configured storage backend,
// and populates the engine from it.
func openSession(opts *RootOptions) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load configuration", err)
	}

	var (
		backend storage.Backend
		closer  io.Closer
	)
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.Storage.SQLite)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "open database", err)
		}
		backend, closer = db, db
	default:
		backend = storage.NewCSV(cfg.Storage.Inventory, cfg.Storage.Sales)
	}

	eng := engine.New(backend)
	if err := eng.Load(); err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, WrapExitError(ExitCommandError, "load store", err)
	}

	return &session{cfg: cfg, eng: eng, closer: closer}, nil
}

func (s *session) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// reportOpError renders an engine rejection through the formatter and
// converts it into an ExitError. Non-OpError errors (persistence failures)
// become command errors.
func reportOpError(f *OutputFormatter, err error) error {
	var opErr *engine.OpError
	if !errors.As(err, &opErr) {
		return WrapExitError(ExitCommandError, "operation failed", err)
	}

	details := opErrorDetails(opErr)
	f.Error(string(opErr.Code), opErr.Message, details)
	return WrapExitError(ExitFailure, opErr.Message, err)
}

func opErrorDetails(opErr *engine.OpError) any {
	if len(opErr.Violations) > 0 {
		msgs := make([]string, len(opErr.Violations))
		for i, v := range opErr.Violations {
			msgs[i] = v.String()
		}
		return msgs
	}
	if len(opErr.Details) > 0 {
		return opErr.Details
	}
	return nil
}

// bookView is the JSON projection of a book.
type bookView struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Genre    string `json:"genre"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

func toBookView(b inventory.Book) bookView {
	return bookView{
		Title:    b.Title,
		Author:   b.Author,
		Genre:    b.Genre,
		Price:    b.Price.StringFixed(2),
		Quantity: b.Quantity,
	}
}

// saleView is the JSON projection of a ledger transaction.
type saleView struct {
	Date         string `json:"date"`
	Title        string `json:"title"`
	QuantitySold int    `json:"quantity_sold"`
	TotalRevenue string `json:"total_revenue"`
}

func toSaleView(s ledger.Sale) saleView {
	return saleView{
		Date:         s.Date.Format(ledger.DateLayout),
		Title:        s.Title,
		QuantitySold: s.QuantitySold,
		TotalRevenue: s.TotalRevenue.StringFixed(2),
	}
}
