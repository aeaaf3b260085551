package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func book(title string, price string, qty int) Book {
	return Book{
		Title:    title,
		Author:   "Author",
		Genre:    "Genre",
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
}

func TestTitleKey(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{name: "case insensitive", a: "The Hobbit", b: "tHe hObBiT"},
		{name: "surrounding whitespace ignored", a: "  Dune  ", b: "Dune"},
		// e + combining acute (NFD) vs precomposed e-acute (NFC)
		{name: "unicode composition normalized", a: "Ame\u0301lie", b: "Am\u00e9lie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, TitleKey(tt.a), TitleKey(tt.b))
		})
	}
}

func TestStore_AddAndFind_CaseInsensitive(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(book("1984", "13.99", 20)))

	got, ok := s.Find("1984")
	require.True(t, ok)
	assert.Equal(t, "1984", got.Title)

	got, ok = s.Find("  1984 ")
	require.True(t, ok)
	assert.Equal(t, 20, got.Quantity)

	upper, ok := s.Find("The Hobbit")
	assert.False(t, ok)
	assert.Zero(t, upper.Title)
}

func TestStore_Add_DuplicateCaseVariant(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(book("The Hobbit", "15.99", 12)))

	err := s.Add(book("the hobbit", "9.99", 1))
	require.Error(t, err)
	assert.True(t, IsDuplicateTitle(err))

	// Store unchanged: still one record with the original fields.
	assert.Equal(t, 1, s.Len())
	got, ok := s.Find("THE HOBBIT")
	require.True(t, ok)
	assert.Equal(t, "The Hobbit", got.Title)
	assert.Equal(t, 12, got.Quantity)
}

func TestStore_SetQuantity(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(book("Dune", "10.00", 5)))

	require.NoError(t, s.SetQuantity("dune", 0))
	got, _ := s.Find("Dune")
	assert.Equal(t, 0, got.Quantity)

	// Idempotent: repeating the same call leaves the same state.
	require.NoError(t, s.SetQuantity("dune", 0))
	got, _ = s.Find("Dune")
	assert.Equal(t, 0, got.Quantity)

	err := s.SetQuantity("Missing", 3)
	assert.True(t, IsNotFound(err))
}

func TestStore_DecrementQuantity(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(book("1984", "13.99", 20)))

	require.NoError(t, s.DecrementQuantity("1984", 5))
	got, _ := s.Find("1984")
	assert.Equal(t, 15, got.Quantity)

	err := s.DecrementQuantity("1984", 16)
	require.Error(t, err)
	assert.True(t, IsInsufficientStock(err))

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 15, stockErr.Available)
	assert.Equal(t, 16, stockErr.Requested)

	// No partial mutation on failure.
	got, _ = s.Find("1984")
	assert.Equal(t, 15, got.Quantity)

	assert.True(t, IsNotFound(s.DecrementQuantity("Missing", 1)))
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(book("A", "1.00", 1)))
	require.NoError(t, s.Add(book("B", "2.00", 2)))
	require.NoError(t, s.Add(book("C", "3.00", 3)))

	require.NoError(t, s.Remove("b"))
	assert.Equal(t, 2, s.Len())

	_, ok := s.Find("B")
	assert.False(t, ok)

	// Records after the removed one are still reachable and ordered.
	books := s.Books()
	require.Len(t, books, 2)
	assert.Equal(t, "A", books[0].Title)
	assert.Equal(t, "C", books[1].Title)

	got, ok := s.Find("C")
	require.True(t, ok)
	assert.Equal(t, 3, got.Quantity)

	assert.True(t, IsNotFound(s.Remove("B")))
	assert.Equal(t, 2, s.Len())
}

func TestStore_PriceOf(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(book("Dune", "10.50", 5)))

	price, err := s.PriceOf("DUNE")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("10.50")))

	_, err = s.PriceOf("Missing")
	assert.True(t, IsNotFound(err))
}

func TestStore_BooksReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(book("A", "1.00", 1)))

	books := s.Books()
	books[0].Quantity = 99

	got, _ := s.Find("A")
	assert.Equal(t, 1, got.Quantity)
}

func TestFromBooks(t *testing.T) {
	loaded, err := FromBooks([]Book{book("A", "1.00", 1), book("B", "2.00", 2)})
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	_, err = FromBooks([]Book{book("A", "1.00", 1), book("a", "2.00", 2)})
	require.Error(t, err)
	assert.True(t, IsDuplicateTitle(err))
}
