package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Code categorizes a validation violation.
type Code string

const (
	// CodeEmptyField indicates a required text field is missing or blank.
	CodeEmptyField Code = "EMPTY_FIELD"

	// CodeInvalidNumber indicates a value that does not parse as a decimal.
	CodeInvalidNumber Code = "INVALID_NUMBER"

	// CodeNonPositiveValue indicates a numeric value that must be > 0 but is not.
	CodeNonPositiveValue Code = "NON_POSITIVE_VALUE"

	// CodeInvalidInteger indicates a value that does not parse as an integer.
	CodeInvalidInteger Code = "INVALID_INTEGER"

	// CodeNegativeValue indicates an integer value that must be >= 0 but is not.
	CodeNegativeValue Code = "NEGATIVE_VALUE"
)

// Violation describes a single failed validation rule.
type Violation struct {
	Code    Code   `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String renders the violation for human-readable error lists.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Book checks all field constraints for a book record in one pass.
//
// Every rule is evaluated independently; the returned slice contains one
// Violation per failed rule. The parsed price and quantity are returned
// regardless of violations in other fields (zero values when their own
// parse failed).
func Book(title, author, genre, price, quantity string) ([]Violation, decimal.Decimal, int) {
	var violations []Violation

	violations = appendBlankCheck(violations, "title", title)
	violations = appendBlankCheck(violations, "author", author)
	violations = appendBlankCheck(violations, "genre", genre)

	parsedPrice, priceViolations := Price(price)
	violations = append(violations, priceViolations...)

	qtyViolations, parsedQty := Quantity(quantity, false)
	violations = append(violations, qtyViolations...)

	return violations, parsedPrice, parsedQty
}

// Price parses a price input and checks that it is a positive decimal.
func Price(raw string) (decimal.Decimal, []Violation) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, []Violation{{
			Code:    CodeInvalidNumber,
			Field:   "price",
			Message: "price must be a valid number",
		}}
	}
	if !price.IsPositive() {
		return price, []Violation{{
			Code:    CodeNonPositiveValue,
			Field:   "price",
			Message: "price must be positive",
		}}
	}
	return price, nil
}

// Quantity parses a quantity input and checks its range.
//
// With requirePositive false (inventory updates) zero is allowed and only
// negative values are rejected. With requirePositive true (sales) the
// quantity must be strictly greater than zero.
func Quantity(raw string, requirePositive bool) ([]Violation, int) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return []Violation{{
			Code:    CodeInvalidInteger,
			Field:   "quantity",
			Message: "quantity must be a valid integer",
		}}, 0
	}
	if requirePositive && qty <= 0 {
		return []Violation{{
			Code:    CodeNonPositiveValue,
			Field:   "quantity",
			Message: "sale quantity must be positive",
		}}, qty
	}
	if !requirePositive && qty < 0 {
		return []Violation{{
			Code:    CodeNegativeValue,
			Field:   "quantity",
			Message: "quantity cannot be negative",
		}}, qty
	}
	return nil, qty
}

func appendBlankCheck(violations []Violation, field, value string) []Violation {
	if strings.TrimSpace(value) == "" {
		violations = append(violations, Violation{
			Code:    CodeEmptyField,
			Field:   field,
			Message: fmt.Sprintf("%s cannot be empty", field),
		})
	}
	return violations
}
