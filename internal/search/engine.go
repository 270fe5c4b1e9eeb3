package search

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"bookshelf/internal/catalog"
	"bookshelf/internal/domain"
)

// Searcher runs a validated query and returns the ranked matches
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.Book, error)
}

// Engine filters and ranks books from a catalog
type Engine struct {
	catalog *catalog.Catalog
}

var _ Searcher = (*Engine)(nil)

// NewEngine creates an engine over the given catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Search returns every book whose title or author contains query, ignoring
// case, ordered by descending effective rating. Zero matches yields an empty,
// non-nil slice; deciding whether that is an error is up to the caller.
func (e *Engine) Search(ctx context.Context, query string) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	folded := fold(query)
	results := make([]domain.Book, 0)
	e.catalog.Each(func(_ int, b domain.Book) bool {
		if matchesFolded(b, folded) {
			results = append(results, b)
		}
		return true
	})

	Rank(results)
	return results, nil
}

// Normalize trims surrounding whitespace and rejects queries that end up empty
func Normalize(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}

// Matches reports whether query occurs in the book's title or author, ignoring case
func Matches(b domain.Book, query string) bool {
	return matchesFolded(b, fold(query))
}

func matchesFolded(b domain.Book, folded string) bool {
	return strings.Contains(fold(b.Title), folded) ||
		strings.Contains(fold(b.Author), folded)
}

// Rank sorts books in place by descending effective rating.
// Books with equal effective rating keep their relative order.
func Rank(books []domain.Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].EffectiveRating() > books[j].EffectiveRating()
	})
}

// fold applies locale-independent case folding.
// A Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
