package book

//go:generate mockgen -source=ports.go -destination=mock_reader.go -package=book

import (
	"bookcatalog/internal/catalog"
)

// Reader is the read-only view of the catalog the handlers need.
// *catalog.Store satisfies it.
type Reader interface {
	All() []catalog.Book
	ByID(id int) (catalog.Book, error)
}
