package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
)

var (
	inventoryHeader = []string{"Title", "Author", "Genre", "Price", "Quantity"}
	salesHeader     = []string{"Date", "Title", "Quantity Sold", "Total Revenue"}
)

// CSV persists the inventory and the sales ledger as two CSV files.
type CSV struct {
	inventoryPath string
	salesPath     string
}

// NewCSV creates a CSV backend for the given file paths.
// Neither file needs to exist yet.
func NewCSV(inventoryPath, salesPath string) *CSV {
	return &CSV{inventoryPath: inventoryPath, salesPath: salesPath}
}

// LoadInventory reads the inventory file.
// A missing file yields an empty inventory, not an error.
func (c *CSV) LoadInventory() ([]inventory.Book, error) {
	rows, err := readTable(c.inventoryPath, inventoryHeader)
	if err != nil || rows == nil {
		return nil, err
	}

	books := make([]inventory.Book, 0, len(rows))
	for i, row := range rows {
		price, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid price %q: %w", c.inventoryPath, i+2, row[3], err)
		}
		qty, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid quantity %q: %w", c.inventoryPath, i+2, row[4], err)
		}
		books = append(books, inventory.Book{
			Title:    row[0],
			Author:   row[1],
			Genre:    row[2],
			Price:    price,
			Quantity: qty,
		})
	}
	return books, nil
}

// SaveInventory rewrites the inventory file with the given records.
func (c *CSV) SaveInventory(books []inventory.Book) error {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			b.Title, b.Author, b.Genre, b.Price.String(), strconv.Itoa(b.Quantity),
		})
	}
	return writeTable(c.inventoryPath, inventoryHeader, rows)
}

// LoadSales reads the sales file.
// A missing file yields an empty ledger, not an error.
func (c *CSV) LoadSales() ([]ledger.Sale, error) {
	rows, err := readTable(c.salesPath, salesHeader)
	if err != nil || rows == nil {
		return nil, err
	}

	sales := make([]ledger.Sale, 0, len(rows))
	for i, row := range rows {
		date, err := time.Parse(ledger.DateLayout, row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid date %q: %w", c.salesPath, i+2, row[0], err)
		}
		qty, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid quantity %q: %w", c.salesPath, i+2, row[2], err)
		}
		revenue, err := decimal.NewFromString(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid revenue %q: %w", c.salesPath, i+2, row[3], err)
		}
		sales = append(sales, ledger.Sale{
			Date:         date,
			Title:        row[1],
			QuantitySold: qty,
			TotalRevenue: revenue,
		})
	}
	return sales, nil
}

// SaveSales rewrites the sales file with the given transactions.
func (c *CSV) SaveSales(sales []ledger.Sale) error {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.Date.Format(ledger.DateLayout),
			s.Title,
			strconv.Itoa(s.QuantitySold),
			s.TotalRevenue.String(),
		})
	}
	return writeTable(c.salesPath, salesHeader, rows)
}

// readTable reads a CSV file and returns its data rows.
// Returns (nil, nil) when the file does not exist.
func readTable(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	first, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !equalRow(first, header) {
		return nil, fmt.Errorf("%s: unexpected header %v, want %v", path, first, header)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, row)
	}
}

// writeTable rewrites a CSV file atomically: the new content is written to a
// temp file in the same directory and renamed over the target, so a crash
// mid-save never leaves a half-written table behind.
func writeTable(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // No-op after successful rename.

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp to %s: %w", path, err)
	}
	return nil
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
