package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Store holds the catalog records for the lifetime of the process.
// It is built once and never mutated, so it is safe for concurrent readers.
type Store struct {
	books []Book
	index map[int]int
}

// NewStore validates books and returns a store owning a private copy of them.
func NewStore(books []Book) (*Store, error) {
	s := &Store{
		books: make([]Book, 0, len(books)),
		index: make(map[int]int, len(books)),
	}

	for i, b := range books {
		if err := validateBook(b); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := s.index[b.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %d", i, ErrDuplicateID, b.ID)
		}
		s.index[b.ID] = len(s.books)
		s.books = append(s.books, b)
	}

	return s, nil
}

func validateBook(b Book) error {
	if err := validate.Struct(b); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
		}
		return fmt.Errorf("%w: id=%d fields=%s", ErrInvalidBook, b.ID, strings.Join(fields, ","))
	}
	return nil
}

// All returns every record in catalog order.
func (s *Store) All() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// ByID returns the record with the given id or ErrNotFound.
func (s *Store) ByID(id int) (Book, error) {
	i, ok := s.index[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return s.books[i], nil
}

func (s *Store) Len() int {
	return len(s.books)
}
