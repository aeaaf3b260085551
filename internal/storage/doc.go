// Package storage provides the persistence backends for the inventory and
// the sales ledger.
//
// Two backends implement the same Backend interface:
//
//   - CSV: two tabular files (inventory.csv, sales.csv) matching the
//     original spreadsheet-friendly layout. Saves are atomic via a temp
//     file and rename.
//   - SQLite: a single database file using WAL mode and a single-writer
//     connection pool.
//
// Both follow write-through semantics: every save rewrites the full table.
// A missing file or empty table loads as an empty collection, not an error.
// Prices and revenues are persisted as decimal strings so that values
// round-trip exactly.
package storage
