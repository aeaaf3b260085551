package storage

import (
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/inventory"
	"github.com/patelneel9080/Bookstore-Inventory-and-Analytics-System/internal/ledger"
)

// Backend is the persistence collaborator used by the engine.
//
// Load methods return empty slices (nil) when no data has been persisted
// yet. Save methods replace the entire stored table with the given records,
// preserving their order.
type Backend interface {
	LoadInventory() ([]inventory.Book, error)
	SaveInventory(books []inventory.Book) error
	LoadSales() ([]ledger.Sale, error)
	SaveSales(sales []ledger.Sale) error
}
