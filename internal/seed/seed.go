// Package seed generates the deterministic sample dataset used to bootstrap
// a fresh store.
package seed

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
)

const (
	// randSeed fixes the sample sales so repeated seeding of the same day
	// produces identical ledgers.
	randSeed = 42

	saleCount  = 150
	historyLen = 90 // days of sales history before today
)

func book(title, author, genre, price string, qty int) inventory.Book {
	return inventory.Book{
		Title:    title,
		Author:   author,
		Genre:    genre,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
}

// Inventory returns the sample catalog of fifteen classics.
func Inventory() []inventory.Book {
	return []inventory.Book{
		book("The Great Gatsby", "F. Scott Fitzgerald", "Fiction", "12.99", 25),
		book("To Kill a Mockingbird", "Harper Lee", "Fiction", "14.50", 30),
		book("1984", "George Orwell", "Dystopian", "13.99", 20),
		book("Pride and Prejudice", "Jane Austen", "Romance", "11.99", 15),
		book("The Catcher in the Rye", "J.D. Salinger", "Fiction", "12.50", 18),
		book("Lord of the Flies", "William Golding", "Adventure", "10.99", 22),
		book("Animal Farm", "George Orwell", "Political Satire", "9.99", 28),
		book("Brave New World", "Aldous Huxley", "Science Fiction", "13.50", 16),
		book("The Hobbit", "J.R.R. Tolkien", "Fantasy", "15.99", 12),
		book("Fahrenheit 451", "Ray Bradbury", "Science Fiction", "12.75", 20),
		book("Jane Eyre", "Charlotte Brontë", "Romance", "11.50", 14),
		book("Wuthering Heights", "Emily Brontë", "Gothic", "10.75", 17),
		book("The Picture of Dorian Gray", "Oscar Wilde", "Gothic", "12.25", 19),
		book("Dracula", "Bram Stoker", "Horror", "11.99", 21),
		book("Frankenstein", "Mary Shelley", "Horror", "10.50", 23),
	}
}

// Sales returns a sample ledger of 150 sales spread over the 90 days before
// today. Only the first ten catalog titles appear in the ledger. The random
// sequence is fixed, so the ledger is a pure function of today.
func Sales(today time.Time) []ledger.Sale {
	catalog := Inventory()[:10]

	rng := rand.New(rand.NewSource(randSeed))
	start := today.AddDate(0, 0, -historyLen)

	sales := make([]ledger.Sale, 0, saleCount)
	for i := 0; i < saleCount; i++ {
		day := start.AddDate(0, 0, rng.Intn(historyLen))
		b := catalog[rng.Intn(len(catalog))]
		qty := 1 + rng.Intn(5)

		sales = append(sales, ledger.Sale{
			Date:         day,
			Title:        b.Title,
			QuantitySold: qty,
			TotalRevenue: b.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return sales
}
