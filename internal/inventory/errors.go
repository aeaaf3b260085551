package inventory

import (
	"errors"
	"fmt"
)

// NotFoundError indicates no book matches the requested title.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book %q not found in inventory", e.Title)
}

// DuplicateTitleError indicates a book with the same canonical title
// already exists.
type DuplicateTitleError struct {
	Title    string
	Existing string // title as stored, may differ in case
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("book %q already exists in inventory (as %q)", e.Title, e.Existing)
}

// InsufficientStockError indicates a decrement larger than the stock on hand.
type InsufficientStockError struct {
	Title     string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d",
		e.Title, e.Available, e.Requested)
}

// IsNotFound reports whether err is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsDuplicateTitle reports whether err is a DuplicateTitleError.
func IsDuplicateTitle(err error) bool {
	var e *DuplicateTitleError
	return errors.As(err, &e)
}

// IsInsufficientStock reports whether err is an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var e *InsufficientStockError
	return errors.As(err, &e)
}
