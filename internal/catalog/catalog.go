package catalog

import (
	"bookshelf/internal/domain"
)

// Catalog is an immutable, ordered, in-memory list of books.
// Every accessor hands out copies so callers cannot mutate the shared data.
type Catalog struct {
	books []domain.Book
}

// New creates a catalog from the given books, preserving their order
func New(books []domain.Book) *Catalog {
	c := &Catalog{books: make([]domain.Book, len(books))}
	for i, b := range books {
		c.books[i] = copyBook(b)
	}
	return c
}

// Default returns the built-in eight-book catalog
func Default() *Catalog {
	return New([]domain.Book{
		domain.NewBook("Fear and Loathing in Las Vegas", "Hunter S. Thompson", 4.5),
		domain.NewBook("The Great Gatsby", "F. Scott Fitzgerald", 4.0),
		domain.NewBook("Moby Dick", "Herman Melville", 3.5),
		domain.NewBook("Pride and Prejudice", "Jane Austen", 4.5),
		domain.NewBook("Dune", "Frank Herbert", 5.0),
		domain.NewBook("Flowers in the Attic", "Virginia Andrews", 1.0),
		domain.NewBook("Moon People", "Dale M. Courtney", 0.0),
		domain.NewBook("The Da Vinci Code", "Dan Brown", 2.5),
	})
}

// Len returns the number of books
func (c *Catalog) Len() int {
	return len(c.books)
}

// All returns a copy of every book in catalog order
func (c *Catalog) All() []domain.Book {
	out := make([]domain.Book, len(c.books))
	for i, b := range c.books {
		out[i] = copyBook(b)
	}
	return out
}

// At returns the book at position i
func (c *Catalog) At(i int) (domain.Book, bool) {
	if i < 0 || i >= len(c.books) {
		return domain.Book{}, false
	}
	return copyBook(c.books[i]), true
}

// Each calls fn for every book in order until fn returns false
func (c *Catalog) Each(fn func(i int, b domain.Book) bool) {
	for i, b := range c.books {
		if !fn(i, copyBook(b)) {
			return
		}
	}
}

func copyBook(b domain.Book) domain.Book {
	if b.Rating != nil {
		r := *b.Rating
		b.Rating = &r
	}
	return b
}
