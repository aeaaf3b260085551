package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/storage"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/validate"
)

// Operation names used in OpError.Op and log lines.
const (
	opAddBook         = "add book"
	opUpdateInventory = "update inventory"
	opRecordSale      = "record sale"
	opRemoveBook      = "remove book"
)

// Engine orchestrates the inventory store and the sales ledger.
//
// INVARIANTS:
//   - At most one book per canonical title in the inventory.
//   - The sales ledger is append-only; the engine never rewrites history.
//   - A sale decrements stock and appends exactly one transaction, or does
//     neither.
//   - Both affected tables are persisted before a mutating operation
//     returns success.
type Engine struct {
	inv     *inventory.Store
	sales   *ledger.Ledger
	backend storage.Backend
	clock   Clock
	tokens  TokenGenerator
	log     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the clock used to date sales.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithTokenGenerator substitutes the op-token generator.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(e *Engine) { e.tokens = g }
}

// WithLogger substitutes the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine over the given storage backend with empty in-memory
// stores. Call Load to populate them from the backend.
func New(backend storage.Backend, opts ...Option) *Engine {
	e := &Engine{
		inv:     inventory.NewStore(),
		sales:   ledger.New(),
		backend: backend,
		clock:   SystemClock(),
		tokens:  UUIDv7Generator{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load replaces the in-memory stores with the backend's persisted state.
// Missing data loads as empty stores.
func (e *Engine) Load() error {
	books, err := e.backend.LoadInventory()
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}
	inv, err := inventory.FromBooks(books)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	sales, err := e.backend.LoadSales()
	if err != nil {
		return fmt.Errorf("load sales: %w", err)
	}

	e.inv = inv
	e.sales = ledger.FromSales(sales)
	e.log.Debug("state loaded", "books", e.inv.Len(), "sales", e.sales.Len())
	return nil
}

// Replace overwrites both stores with the given data and persists them.
// Seeding uses this; normal operations never rewrite the ledger.
func (e *Engine) Replace(books []inventory.Book, sales []ledger.Sale) error {
	inv, err := inventory.FromBooks(books)
	if err != nil {
		return fmt.Errorf("replace inventory: %w", err)
	}
	e.inv = inv
	e.sales = ledger.FromSales(sales)

	if err := e.backend.SaveInventory(e.inv.Books()); err != nil {
		return fmt.Errorf("replace: persist inventory: %w", err)
	}
	if err := e.backend.SaveSales(e.sales.All()); err != nil {
		return fmt.Errorf("replace: persist sales: %w", err)
	}

	e.log.Info("store replaced", "books", e.inv.Len(), "sales", e.sales.Len())
	return nil
}

// Books returns a snapshot of the inventory in insertion order.
// Reporting reads this; mutating the returned slice has no effect on the engine.
func (e *Engine) Books() []inventory.Book {
	return e.inv.Books()
}

// Sales returns a snapshot of the sales ledger in insertion order.
func (e *Engine) Sales() []ledger.Sale {
	return e.sales.All()
}

// Find looks up a single book by title (canonical-key match).
func (e *Engine) Find(title string) (inventory.Book, bool) {
	return e.inv.Find(title)
}

// AddBook validates all fields, inserts a new book record, and persists the
// inventory.
//
// Price and quantity arrive as raw strings; the engine owns parsing. All
// field violations are reported together in a single OpError.
func (e *Engine) AddBook(title, author, genre, price, quantity string) (inventory.Book, error) {
	token := e.tokens.Generate()

	violations, parsedPrice, parsedQty := validate.Book(title, author, genre, price, quantity)
	if len(violations) > 0 {
		return inventory.Book{}, e.reject(token, newValidationError(opAddBook, title, violations))
	}

	book := inventory.Book{
		Title:    strings.TrimSpace(title),
		Author:   strings.TrimSpace(author),
		Genre:    strings.TrimSpace(genre),
		Price:    parsedPrice,
		Quantity: parsedQty,
	}
	if err := e.inv.Add(book); err != nil {
		return inventory.Book{}, e.reject(token, e.storeError(opAddBook, title, err))
	}

	if err := e.backend.SaveInventory(e.inv.Books()); err != nil {
		return inventory.Book{}, fmt.Errorf("%s: persist inventory: %w", opAddBook, err)
	}

	e.log.Info("book added", "op_token", token,
		"title", book.Title, "price", book.Price.String(), "quantity", book.Quantity)
	return book, nil
}

// UpdateInventory overwrites the stock count for an existing title and
// persists the inventory. Zero is a valid quantity.
func (e *Engine) UpdateInventory(title, quantity string) error {
	token := e.tokens.Generate()

	violations, qty := validate.Quantity(quantity, false)
	if len(violations) > 0 {
		return e.reject(token, newValidationError(opUpdateInventory, title, violations))
	}

	if err := e.inv.SetQuantity(title, qty); err != nil {
		return e.reject(token, e.storeError(opUpdateInventory, title, err))
	}

	if err := e.backend.SaveInventory(e.inv.Books()); err != nil {
		return fmt.Errorf("%s: persist inventory: %w", opUpdateInventory, err)
	}

	e.log.Info("inventory updated", "op_token", token, "title", title, "quantity", qty)
	return nil
}

// RecordSale sells quantity copies of the titled book.
//
// The operation proceeds through validation, existence and stock checks
// before anything mutates; a rejection at any of those steps leaves both
// stores and both persisted tables exactly as they were. On commit the
// stock is decremented, one transaction is appended at today's date with
// revenue = current price x quantity, and both tables are persisted.
func (e *Engine) RecordSale(title, quantity string) (ledger.Sale, error) {
	token := e.tokens.Generate()

	// Requested -> Validated
	violations, qty := validate.Quantity(quantity, true)
	if len(violations) > 0 {
		return ledger.Sale{}, e.reject(token, newValidationError(opRecordSale, title, violations))
	}

	// Validated -> StockChecked
	book, ok := e.inv.Find(title)
	if !ok {
		return ledger.Sale{}, e.reject(token, e.storeError(opRecordSale, title,
			&inventory.NotFoundError{Title: title}))
	}
	if book.Quantity < qty {
		return ledger.Sale{}, e.reject(token, e.storeError(opRecordSale, title,
			&inventory.InsufficientStockError{Title: title, Available: book.Quantity, Requested: qty}))
	}

	// StockChecked -> Committed
	// Revenue uses the current inventory price, not any historical price.
	revenue := book.Price.Mul(decimal.NewFromInt(int64(qty)))
	if err := e.inv.DecrementQuantity(title, qty); err != nil {
		return ledger.Sale{}, e.reject(token, e.storeError(opRecordSale, title, err))
	}

	sale := ledger.Sale{
		Date:         dateOnly(e.clock.Today()),
		Title:        book.Title,
		QuantitySold: qty,
		TotalRevenue: revenue,
	}
	e.sales.Append(sale)

	if err := e.backend.SaveInventory(e.inv.Books()); err != nil {
		return ledger.Sale{}, fmt.Errorf("%s: persist inventory: %w", opRecordSale, err)
	}
	if err := e.backend.SaveSales(e.sales.All()); err != nil {
		return ledger.Sale{}, fmt.Errorf("%s: persist sales: %w", opRecordSale, err)
	}

	e.log.Info("sale recorded", "op_token", token,
		"title", sale.Title, "quantity", qty, "revenue", revenue.String())
	return sale, nil
}

// RemoveBook deletes the record matching title and persists the inventory.
//
// Historical sales for the title stay in the ledger untouched; the title
// reference there is informational only.
func (e *Engine) RemoveBook(title string) error {
	token := e.tokens.Generate()

	if err := e.inv.Remove(title); err != nil {
		return e.reject(token, e.storeError(opRemoveBook, title, err))
	}

	if err := e.backend.SaveInventory(e.inv.Books()); err != nil {
		return fmt.Errorf("%s: persist inventory: %w", opRemoveBook, err)
	}

	e.log.Info("book removed", "op_token", token, "title", title)
	return nil
}

// storeError translates an inventory store error into an OpError.
func (e *Engine) storeError(op, title string, err error) *OpError {
	switch {
	case inventory.IsNotFound(err):
		return &OpError{
			Code: CodeNotFound, Op: op, Title: title,
			Message: err.Error(), Err: err,
		}
	case inventory.IsDuplicateTitle(err):
		return &OpError{
			Code: CodeDuplicateTitle, Op: op, Title: title,
			Message: err.Error(), Err: err,
		}
	case inventory.IsInsufficientStock(err):
		oe := &OpError{
			Code: CodeInsufficientStock, Op: op, Title: title,
			Message: err.Error(), Err: err,
		}
		var stockErr *inventory.InsufficientStockError
		if errors.As(err, &stockErr) {
			oe.Details = map[string]string{
				"available": fmt.Sprintf("%d", stockErr.Available),
				"requested": fmt.Sprintf("%d", stockErr.Requested),
			}
		}
		return oe
	default:
		return &OpError{Code: CodeInternal, Op: op, Title: title, Message: err.Error(), Err: err}
	}
}

func (e *Engine) reject(token string, oe *OpError) *OpError {
	e.log.Warn("operation rejected", "op_token", token,
		"op", oe.Op, "code", string(oe.Code), "title", oe.Title, "reason", oe.Error())
	return oe
}
