package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/validate"
)

// OpError represents a rejected engine operation.
//
// Rejections are recoverable, local errors: bad input, an unknown title,
// a duplicate title, or not enough stock. The engine never panics and never
// terminates the process over one of these.
type OpError struct {
	// Code identifies the rejection category.
	Code Code

	// Op names the operation that was rejected.
	Op string

	// Title is the book title the operation targeted, when there is one.
	Title string

	// Message is a human-readable description.
	Message string

	// Violations lists the individual field violations for
	// CodeValidationFailed rejections.
	Violations []validate.Violation

	// Details contains additional context (e.g. available vs requested stock).
	Details map[string]string

	// Err is the underlying store error, if any.
	Err error
}

// Code categorizes engine rejections.
type Code string

const (
	// CodeValidationFailed indicates one or more field violations.
	// The individual violation codes are in OpError.Violations.
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// CodeDuplicateTitle indicates the title already exists in the inventory.
	CodeDuplicateTitle Code = "DUPLICATE_TITLE"

	// CodeNotFound indicates no book matches the title.
	CodeNotFound Code = "NOT_FOUND"

	// CodeInsufficientStock indicates the requested sale quantity exceeds
	// the stock on hand.
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"

	// CodeInternal indicates a store error outside the known taxonomy.
	// Nothing produces one today; it keeps an unrecognized error from being
	// reported under a misleading category.
	CodeInternal Code = "INTERNAL"
)

// Error implements the error interface.
func (e *OpError) Error() string {
	if len(e.Violations) > 0 {
		parts := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			parts[i] = v.String()
		}
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, strings.Join(parts, "; "))
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Op)
}

// Unwrap exposes the underlying store error for errors.Is / errors.As.
func (e *OpError) Unwrap() error {
	return e.Err
}

// IsValidationFailed reports whether err is a validation rejection.
// Uses errors.As to handle wrapped errors.
func IsValidationFailed(err error) bool {
	return hasCode(err, CodeValidationFailed)
}

// IsDuplicateTitle reports whether err is a duplicate-title rejection.
func IsDuplicateTitle(err error) bool {
	return hasCode(err, CodeDuplicateTitle)
}

// IsNotFound reports whether err is an unknown-title rejection.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsInsufficientStock reports whether err is an insufficient-stock rejection.
func IsInsufficientStock(err error) bool {
	return hasCode(err, CodeInsufficientStock)
}

// HasViolation reports whether err carries a validation violation with the
// given code (e.g. validate.CodeEmptyField).
func HasViolation(err error, code validate.Code) bool {
	var oe *OpError
	if !errors.As(err, &oe) {
		return false
	}
	for _, v := range oe.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

func hasCode(err error, code Code) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Code == code
	}
	return false
}

func newValidationError(op, title string, violations []validate.Violation) *OpError {
	return &OpError{
		Code:       CodeValidationFailed,
		Op:         op,
		Title:      title,
		Message:    fmt.Sprintf("%d validation error(s)", len(violations)),
		Violations: violations,
	}
}
