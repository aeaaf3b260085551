package engine

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/testutil"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/validate"
)

// memBackend is an in-memory storage backend that counts saves, so tests
// can assert exactly which tables were persisted by an operation.
type memBackend struct {
	books      []inventory.Book
	sales      []ledger.Sale
	invSaves   int
	salesSaves int
	saveErr    error
}

func (m *memBackend) LoadInventory() ([]inventory.Book, error) { return m.books, nil }

func (m *memBackend) SaveInventory(books []inventory.Book) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.books = books
	m.invSaves++
	return nil
}

func (m *memBackend) LoadSales() ([]ledger.Sale, error) { return m.sales, nil }

func (m *memBackend) SaveSales(sales []ledger.Sale) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sales = sales
	m.salesSaves++
	return nil
}

var saleDate = testutil.Date(2026, time.August, 26)

func newTestEngine(t *testing.T, backend *memBackend) *Engine {
	t.Helper()
	e := New(backend,
		WithClock(testutil.FixedClock{T: saleDate.Add(14*time.Hour)}), // mid-day wall clock
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, e.Load())
	return e
}

func seeded(t *testing.T, backend *memBackend, books ...inventory.Book) *Engine {
	t.Helper()
	backend.books = books
	return newTestEngine(t, backend)
}

func orwell1984() inventory.Book {
	return inventory.Book{
		Title:    "1984",
		Author:   "George Orwell",
		Genre:    "Dystopian",
		Price:    decimal.RequireFromString("13.99"),
		Quantity: 20,
	}
}

func TestAddBook_ThenLookupCaseVariant(t *testing.T) {
	backend := &memBackend{}
	e := newTestEngine(t, backend)

	book, err := e.AddBook("The Hobbit", "J.R.R. Tolkien", "Fantasy", "15.99", "12")
	require.NoError(t, err)
	assert.Equal(t, "The Hobbit", book.Title)

	got, ok := e.Find("tHe hObBiT")
	require.True(t, ok)
	assert.Equal(t, 12, got.Quantity)
	assert.Equal(t, 1, backend.invSaves, "inventory persisted once")
	assert.Equal(t, 0, backend.salesSaves, "sales untouched")
}

func TestAddBook_DuplicateCaseVariant(t *testing.T) {
	backend := &memBackend{}
	e := seeded(t, backend, orwell1984())
	backend.invSaves = 0

	_, err := e.AddBook("1984", "Somebody Else", "Fiction", "9.99", "1")
	require.Error(t, err)
	assert.True(t, IsDuplicateTitle(err))

	assert.Len(t, e.Books(), 1)
	assert.Equal(t, 0, backend.invSaves, "nothing persisted on rejection")
}

func TestAddBook_EmptyAuthorRejected(t *testing.T) {
	backend := &memBackend{}
	e := newTestEngine(t, backend)

	_, err := e.AddBook("Dune", "", "Sci-Fi", "10.0", "5")
	require.Error(t, err)
	assert.True(t, IsValidationFailed(err))
	assert.True(t, HasViolation(err, validate.CodeEmptyField))

	_, ok := e.Find("Dune")
	assert.False(t, ok, "book must not be added")
	assert.Equal(t, 0, backend.invSaves)
}

func TestAddBook_AllViolationsReported(t *testing.T) {
	e := newTestEngine(t, &memBackend{})

	_, err := e.AddBook("", "", "", "free", "-1")
	require.Error(t, err)

	var oe *OpError
	require.ErrorAs(t, err, &oe)
	assert.Len(t, oe.Violations, 5)
}

func TestUpdateInventory(t *testing.T) {
	backend := &memBackend{}
	e := seeded(t, backend, orwell1984())
	backend.invSaves = 0

	require.NoError(t, e.UpdateInventory("1984", "7"))
	got, _ := e.Find("1984")
	assert.Equal(t, 7, got.Quantity)

	// Idempotent: same call, same resulting state.
	require.NoError(t, e.UpdateInventory("1984", "7"))
	got, _ = e.Find("1984")
	assert.Equal(t, 7, got.Quantity)

	// Zero is a valid stock level.
	require.NoError(t, e.UpdateInventory("1984", "0"))
	got, _ = e.Find("1984")
	assert.Equal(t, 0, got.Quantity)

	assert.Equal(t, 3, backend.invSaves)
}

func TestUpdateInventory_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		quantity string
		check    func(error) bool
	}{
		{name: "missing title", title: "Dune", quantity: "3", check: IsNotFound},
		{name: "invalid integer", title: "1984", quantity: "lots", check: IsValidationFailed},
		{name: "negative", title: "1984", quantity: "-4", check: IsValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &memBackend{}
			e := seeded(t, backend, orwell1984())
			backend.invSaves = 0

			err := e.UpdateInventory(tt.title, tt.quantity)
			require.Error(t, err)
			assert.True(t, tt.check(err))

			got, _ := e.Find("1984")
			assert.Equal(t, 20, got.Quantity, "stock unchanged")
			assert.Equal(t, 0, backend.invSaves)
		})
	}
}

func TestUpdateInventory_EmptyInventoryNotFound(t *testing.T) {
	e := newTestEngine(t, &memBackend{})

	err := e.UpdateInventory("Dune", "3")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRecordSale_Commit(t *testing.T) {
	backend := &memBackend{}
	e := seeded(t, backend, orwell1984())
	backend.invSaves = 0

	sale, err := e.RecordSale("1984", "5")
	require.NoError(t, err)

	assert.Equal(t, "1984", sale.Title)
	assert.Equal(t, 5, sale.QuantitySold)
	assert.True(t, sale.TotalRevenue.Equal(decimal.RequireFromString("69.95")),
		"revenue 13.99 x 5, got %s", sale.TotalRevenue)
	assert.True(t, sale.Date.Equal(saleDate), "sale dated at day granularity")

	got, _ := e.Find("1984")
	assert.Equal(t, 15, got.Quantity)

	require.Len(t, e.Sales(), 1)
	assert.Equal(t, 1, backend.invSaves, "inventory persisted")
	assert.Equal(t, 1, backend.salesSaves, "sales persisted")
}

func TestRecordSale_CaseVariantTitleUsesStoredSpelling(t *testing.T) {
	e := seeded(t, &memBackend{}, orwell1984())

	sale, err := e.RecordSale("  1984 ", "1")
	require.NoError(t, err)
	assert.Equal(t, "1984", sale.Title)
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	backend := &memBackend{}
	e := seeded(t, backend, orwell1984())
	backend.invSaves = 0

	_, err := e.RecordSale("1984", "21")
	require.Error(t, err)
	assert.True(t, IsInsufficientStock(err))

	var oe *OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "20", oe.Details["available"])
	assert.Equal(t, "21", oe.Details["requested"])

	// Neither store mutated, neither table persisted.
	got, _ := e.Find("1984")
	assert.Equal(t, 20, got.Quantity)
	assert.Empty(t, e.Sales())
	assert.Equal(t, 0, backend.invSaves)
	assert.Equal(t, 0, backend.salesSaves)
}

func TestRecordSale_QuantityRejections(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		code     validate.Code
	}{
		{name: "zero", quantity: "0", code: validate.CodeNonPositiveValue},
		{name: "negative", quantity: "-3", code: validate.CodeNonPositiveValue},
		{name: "garbage", quantity: "five", code: validate.CodeInvalidInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := seeded(t, &memBackend{}, orwell1984())

			_, err := e.RecordSale("1984", tt.quantity)
			require.Error(t, err)
			assert.True(t, IsValidationFailed(err))
			assert.True(t, HasViolation(err, tt.code))
			assert.Empty(t, e.Sales())
		})
	}
}

func TestRecordSale_UnknownTitle(t *testing.T) {
	e := seeded(t, &memBackend{}, orwell1984())

	_, err := e.RecordSale("Dune", "1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Empty(t, e.Sales())
}

func TestRemoveBook(t *testing.T) {
	backend := &memBackend{}
	e := seeded(t, backend, orwell1984())
	_, err := e.RecordSale("1984", "2")
	require.NoError(t, err)
	backend.invSaves = 0

	require.NoError(t, e.RemoveBook("1984"))
	_, ok := e.Find("1984")
	assert.False(t, ok)
	assert.Equal(t, 1, backend.invSaves)

	// Historical sales survive the removal (orphaned title reference).
	require.Len(t, e.Sales(), 1)
	assert.Equal(t, "1984", e.Sales()[0].Title)
}

func TestRemoveBook_NotFound(t *testing.T) {
	backend := &memBackend{}
	e := seeded(t, backend, orwell1984())
	backend.invSaves = 0

	err := e.RemoveBook("Dune")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Len(t, e.Books(), 1)
	assert.Equal(t, 0, backend.invSaves)
}

func TestLoad_PopulatesFromBackend(t *testing.T) {
	backend := &memBackend{
		books: []inventory.Book{orwell1984()},
		sales: []ledger.Sale{{
			Date: saleDate, Title: "1984", QuantitySold: 2,
			TotalRevenue: decimal.RequireFromString("27.98"),
		}},
	}
	e := newTestEngine(t, backend)

	assert.Len(t, e.Books(), 1)
	assert.Len(t, e.Sales(), 1)
}

func TestReplace(t *testing.T) {
	backend := &memBackend{}
	e := seeded(t, backend, orwell1984())
	backend.invSaves = 0

	books := []inventory.Book{{
		Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction",
		Price: decimal.RequireFromString("16.99"), Quantity: 8,
	}}
	sales := []ledger.Sale{{
		Date: saleDate, Title: "Dune", QuantitySold: 2,
		TotalRevenue: decimal.RequireFromString("33.98"),
	}}
	require.NoError(t, e.Replace(books, sales))

	assert.Len(t, e.Books(), 1)
	assert.Len(t, e.Sales(), 1)
	_, ok := e.Find("Dune")
	assert.True(t, ok)
	assert.Equal(t, 1, backend.invSaves)
	assert.Equal(t, 1, backend.salesSaves)
}

func TestReplace_DuplicateTitles(t *testing.T) {
	e := seeded(t, &memBackend{}, orwell1984())

	dup := []inventory.Book{orwell1984(), orwell1984()}
	err := e.Replace(dup, nil)
	require.Error(t, err)

	// The previous state survives a rejected replacement.
	_, ok := e.Find("1984")
	assert.True(t, ok)
}

func TestStoreError_UnknownErrorKeepsDistinctCode(t *testing.T) {
	e := newTestEngine(t, &memBackend{})

	oe := e.storeError(opAddBook, "1984", errors.New("index corrupted"))
	assert.Equal(t, CodeInternal, oe.Code)
	assert.False(t, IsNotFound(oe))
	assert.ErrorContains(t, oe, "index corrupted")
}

func TestAddBook_PersistFailureSurfaces(t *testing.T) {
	backend := &memBackend{}
	e := newTestEngine(t, backend)
	backend.saveErr = errors.New("disk full")

	_, err := e.AddBook("Dune", "Frank Herbert", "Sci-Fi", "10.00", "5")
	require.Error(t, err)
	assert.False(t, IsValidationFailed(err))
	assert.ErrorContains(t, err, "disk full")
}
