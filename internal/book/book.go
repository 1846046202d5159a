package book

import (
	"net/url"
	"strings"

	"bookcatalog/internal/catalog"
)

// Query holds the optional search fragments. An empty fragment imposes no
// constraint.
type Query struct {
	Title  string
	Author string
	Genre  string
}

// QueryFromValues reads title, author and genre; other keys are ignored.
func QueryFromValues(v url.Values) Query {
	return Query{
		Title:  v.Get("title"),
		Author: v.Get("author"),
		Genre:  v.Get("genre"),
	}
}

type fieldFilter struct {
	fragment string
	field    func(catalog.Book) string
}

// Filter keeps the books whose fields contain every non-empty fragment,
// ignoring case. The input order is preserved and the input is not modified.
func Filter(books []catalog.Book, q Query) []catalog.Book {
	filters := []fieldFilter{
		{q.Title, func(b catalog.Book) string { return b.Title }},
		{q.Author, func(b catalog.Book) string { return b.Author }},
		{q.Genre, func(b catalog.Book) string { return b.Genre }},
	}

	results := make([]catalog.Book, len(books))
	copy(results, books)
	for _, f := range filters {
		if f.fragment == "" {
			continue
		}
		needle := strings.ToLower(f.fragment)
		kept := make([]catalog.Book, 0, len(results))
		for _, b := range results {
			if strings.Contains(strings.ToLower(f.field(b)), needle) {
				kept = append(kept, b)
			}
		}
		results = kept
	}
	return results
}
