package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (books + sales tables)
const currentSchemaVersion = 1

// SQLite persists the inventory and the sales ledger in a single database
// file. Saves replace the whole table inside one transaction, matching the
// write-through semantics of the CSV backend.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at the given path and applies
// pragmas and the schema. Safe to call on an existing database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadInventory reads every book row in stored order.
func (s *SQLite) LoadInventory() ([]inventory.Book, error) {
	rows, err := s.db.Query(`
		SELECT title, author, genre, price, quantity
		FROM books
		ORDER BY pos ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	defer rows.Close()

	var books []inventory.Book
	for rows.Next() {
		var b inventory.Book
		var price string
		if err := rows.Scan(&b.Title, &b.Author, &b.Genre, &price, &b.Quantity); err != nil {
			return nil, fmt.Errorf("load inventory: %w", err)
		}
		b.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("load inventory: invalid price %q: %w", price, err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	return books, nil
}

// SaveInventory replaces the books table with the given records.
func (s *SQLite) SaveInventory(books []inventory.Book) error {
	return s.replaceTable("books", func(tx *sql.Tx) error {
		for i, b := range books {
			_, err := tx.Exec(`
				INSERT INTO books (pos, title, author, genre, price, quantity)
				VALUES (?, ?, ?, ?, ?, ?)
			`, i, b.Title, b.Author, b.Genre, b.Price.String(), b.Quantity)
			if err != nil {
				return fmt.Errorf("insert book %q: %w", b.Title, err)
			}
		}
		return nil
	})
}

// LoadSales reads every sale row in stored order.
func (s *SQLite) LoadSales() ([]ledger.Sale, error) {
	rows, err := s.db.Query(`
		SELECT sale_date, title, quantity_sold, total_revenue
		FROM sales
		ORDER BY pos ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	defer rows.Close()

	var sales []ledger.Sale
	for rows.Next() {
		var sale ledger.Sale
		var date, revenue string
		if err := rows.Scan(&date, &sale.Title, &sale.QuantitySold, &revenue); err != nil {
			return nil, fmt.Errorf("load sales: %w", err)
		}
		sale.Date, err = time.Parse(ledger.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("load sales: invalid date %q: %w", date, err)
		}
		sale.TotalRevenue, err = decimal.NewFromString(revenue)
		if err != nil {
			return nil, fmt.Errorf("load sales: invalid revenue %q: %w", revenue, err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return sales, nil
}

// SaveSales replaces the sales table with the given transactions.
func (s *SQLite) SaveSales(sales []ledger.Sale) error {
	return s.replaceTable("sales", func(tx *sql.Tx) error {
		for i, sale := range sales {
			_, err := tx.Exec(`
				INSERT INTO sales (pos, sale_date, title, quantity_sold, total_revenue)
				VALUES (?, ?, ?, ?, ?)
			`, i, sale.Date.Format(ledger.DateLayout), sale.Title, sale.QuantitySold, sale.TotalRevenue.String())
			if err != nil {
				return fmt.Errorf("insert sale for %q: %w", sale.Title, err)
			}
		}
		return nil
	})
}

// replaceTable deletes all rows from table and runs insert inside a single
// transaction, so readers never observe a half-saved table.
func (s *SQLite) replaceTable(table string, insert func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save %s: begin tx: %w", table, err)
	}
	defer tx.Rollback() // No-op if committed.

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("save %s: clear table: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return fmt.Errorf("save %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save %s: commit: %w", table, err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist and stamps the schema
// version. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec("PRAGMA user_version = " + strconv.Itoa(currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}
