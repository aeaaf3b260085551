package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Book is a single inventory record.
type Book struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Genre    string          `json:"genre"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// TitleKey returns the canonical lookup key for a title.
//
// The key is the trimmed, NFC-normalized, lower-cased title. Two titles that
// differ only in case, surrounding whitespace, or Unicode composition map to
// the same key.
func TitleKey(title string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(title)))
}
