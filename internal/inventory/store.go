package inventory

import (
	"github.com/shopspring/decimal"
)

// Store is the in-memory collection of book records.
//
// Books are held in insertion order with a side index from canonical title
// key to position. The index and slice are kept consistent by every
// mutation; failed operations never partially apply.
//
// Store is not safe for concurrent use. The engine owns a single Store per
// process and serializes access (single-writer assumption).
type Store struct {
	books []Book
	index map[string]int
}

// NewStore creates an empty inventory store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// FromBooks builds a store from an already-loaded book list, typically the
// result of a storage backend load.
//
// Returns a DuplicateTitleError if two records collapse to the same
// canonical title, since that would silently drop data.
func FromBooks(books []Book) (*Store, error) {
	s := NewStore()
	for _, b := range books {
		if err := s.Add(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of unique titles in the store.
func (s *Store) Len() int {
	return len(s.books)
}

// Books returns a copy of all records in insertion order.
// Mutating the returned slice does not affect the store.
func (s *Store) Books() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Find returns the book matching title under canonical-key comparison.
func (s *Store) Find(title string) (Book, bool) {
	i, ok := s.index[TitleKey(title)]
	if !ok {
		return Book{}, false
	}
	return s.books[i], true
}

// Add inserts a new book record.
// Fails with DuplicateTitleError if a book with the same canonical title
// already exists, leaving the store unchanged.
func (s *Store) Add(b Book) error {
	key := TitleKey(b.Title)
	if i, ok := s.index[key]; ok {
		return &DuplicateTitleError{Title: b.Title, Existing: s.books[i].Title}
	}
	s.index[key] = len(s.books)
	s.books = append(s.books, b)
	return nil
}

// SetQuantity overwrites the stock count for an existing title.
func (s *Store) SetQuantity(title string, quantity int) error {
	i, ok := s.index[TitleKey(title)]
	if !ok {
		return &NotFoundError{Title: title}
	}
	s.books[i].Quantity = quantity
	return nil
}

// DecrementQuantity subtracts amount from the stock count of an existing
// title. Fails with InsufficientStockError if stock on hand is lower than
// amount; the stored quantity is untouched on failure.
func (s *Store) DecrementQuantity(title string, amount int) error {
	i, ok := s.index[TitleKey(title)]
	if !ok {
		return &NotFoundError{Title: title}
	}
	if s.books[i].Quantity < amount {
		return &InsufficientStockError{
			Title:     title,
			Available: s.books[i].Quantity,
			Requested: amount,
		}
	}
	s.books[i].Quantity -= amount
	return nil
}

// Remove deletes the record matching title.
func (s *Store) Remove(title string) error {
	key := TitleKey(title)
	i, ok := s.index[key]
	if !ok {
		return &NotFoundError{Title: title}
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	delete(s.index, key)
	// Positions after the removed record shift down by one.
	for k, pos := range s.index {
		if pos > i {
			s.index[k] = pos - 1
		}
	}
	return nil
}

// PriceOf returns the unit price of the book matching title.
func (s *Store) PriceOf(title string) (decimal.Decimal, error) {
	i, ok := s.index[TitleKey(title)]
	if !ok {
		return decimal.Zero, &NotFoundError{Title: title}
	}
	return s.books[i].Price, nil
}
