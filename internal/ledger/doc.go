// Package ledger implements the append-only sales ledger.
//
// Each sale records the date, the title sold, the quantity, and the revenue
// computed at sale time. Once appended a sale is never mutated or deleted;
// the ledger preserves insertion order, which chronological reports rely on.
//
// Titles are referential only: removing a book from the inventory does not
// touch its historical sales.
package ledger
