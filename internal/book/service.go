package book

import (
	"bookcatalog/internal/catalog"
)

// Service answers catalog queries.
type Service struct {
	reader Reader
}

// NewService creates a new book service.
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// List returns every book in catalog order.
func (s *Service) List() []catalog.Book {
	return s.reader.All()
}

// Get returns the book with the given id or catalog.ErrNotFound.
func (s *Service) Get(id int) (catalog.Book, error) {
	return s.reader.ByID(id)
}

// Search returns the books matching every fragment in q, in catalog order.
func (s *Service) Search(q Query) []catalog.Book {
	return Filter(s.reader.All(), q)
}
