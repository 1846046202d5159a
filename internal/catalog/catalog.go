package catalog

import (
	"errors"
)

var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate book id")
	// ErrInvalidBook is returned when a record fails field validation.
	ErrInvalidBook = errors.New("invalid book")
)

// Book is a single catalog record.
type Book struct {
	ID     int    `json:"id" validate:"gt=0"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   int    `json:"year"`
	Genre  string `json:"genre" validate:"required"`
}

// Seed returns the reference records in catalog order.
// Every call returns a fresh slice.
func Seed() []Book {
	return []Book{
		{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925, Genre: "Fiction"},
		{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960, Genre: "Fiction"},
		{ID: 3, Title: "1984", Author: "George Orwell", Year: 1949, Genre: "Dystopian"},
		{ID: 4, Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813, Genre: "Romance"},
		{ID: 5, Title: "The Hobbit", Author: "J.R.R. Tolkien", Year: 1937, Genre: "Fantasy"},
	}
}
