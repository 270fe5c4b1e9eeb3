package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/catalog"
	"bookshelf/internal/domain"
)

func titles(books []domain.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func search(t *testing.T, query string) []domain.Book {
	t.Helper()
	results, err := NewEngine(catalog.Default()).Search(context.Background(), query)
	require.NoError(t, err)
	return results
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"plain", "gatsby", "gatsby", nil},
		{"surrounding whitespace", "  dune\t", "dune", nil},
		{"inner whitespace kept", " moby  dick ", "moby  dick", nil},
		{"empty", "", "", ErrEmptyQuery},
		{"spaces only", "   ", "", ErrEmptyQuery},
		{"mixed whitespace", "\n\t ", "", ErrEmptyQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchByTitle(t *testing.T) {
	results := search(t, "gatsby")
	require.Len(t, results, 1)
	assert.Equal(t, "The Great Gatsby", results[0].Title)
}

func TestSearchIgnoresCase(t *testing.T) {
	lower := search(t, "gatsby")
	upper := search(t, "GATSBY")
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("case should not matter (-lower +upper):\n%s", diff)
	}
}

func TestSearchByAuthor(t *testing.T) {
	results := search(t, "thompson")
	require.Len(t, results, 1)
	assert.Equal(t, "Fear and Loathing in Las Vegas", results[0].Title)
	assert.Equal(t, "Hunter S. Thompson", results[0].Author)
}

func TestSearchNoMatchesReturnsEmptySlice(t *testing.T) {
	results := search(t, "nonexistent book")
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchRanksByRatingDescending(t *testing.T) {
	results := search(t, "a")

	want := []string{
		"Dune",
		"Fear and Loathing in Las Vegas",
		"Pride and Prejudice",
		"The Great Gatsby",
		"Moby Dick",
		"The Da Vinci Code",
		"Flowers in the Attic",
		"Moon People",
	}
	if diff := cmp.Diff(want, titles(results)); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].EffectiveRating(), results[i].EffectiveRating())
	}
}

func TestRankIsStableAndKeepsAbsentRatings(t *testing.T) {
	books := []domain.Book{
		domain.NewUnratedBook("Unrated first", "A"),
		domain.NewBook("Zero", "B", 0),
		domain.NewBook("Top", "C", 3),
		domain.NewUnratedBook("Unrated second", "D"),
	}

	Rank(books)

	assert.Equal(t, []string{"Top", "Unrated first", "Zero", "Unrated second"}, titles(books))
	assert.False(t, books[1].HasRating(), "absent rating must not be rewritten")
	assert.True(t, books[2].HasRating())
}

func TestSearchIsIdempotent(t *testing.T) {
	engine := NewEngine(catalog.Default())
	for _, q := range []string{"a", "the", "MOON", "xyz"} {
		first, err := engine.Search(context.Background(), q)
		require.NoError(t, err)
		second, err := engine.Search(context.Background(), q)
		require.NoError(t, err)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("query %q not idempotent:\n%s", q, diff)
		}
	}
}

func TestSearchDoesNotAliasCatalog(t *testing.T) {
	c := catalog.Default()
	engine := NewEngine(c)

	results, err := engine.Search(context.Background(), "dune")
	require.NoError(t, err)
	require.Len(t, results, 1)
	*results[0].Rating = 0

	again, err := engine.Search(context.Background(), "dune")
	require.NoError(t, err)
	assert.Equal(t, 5.0, again[0].EffectiveRating())
}

// Any case-permuted substring of a title or author finds that book.
func TestSubstringOfEveryBookMatches(t *testing.T) {
	c := catalog.Default()
	engine := NewEngine(c)

	permute := []func(string) string{strings.ToUpper, strings.ToLower, swapCase}
	c.Each(func(_ int, b domain.Book) bool {
		for _, field := range []string{b.Title, b.Author} {
			for start := 0; start < len(field); start += 3 {
				end := start + 4
				if end > len(field) {
					end = len(field)
				}
				sub := field[start:end]
				if strings.TrimSpace(sub) == "" {
					continue
				}
				for _, p := range permute {
					q := p(sub)
					t.Run(fmt.Sprintf("%s/%q", b.Title, q), func(t *testing.T) {
						results, err := engine.Search(context.Background(), q)
						require.NoError(t, err)
						assert.Contains(t, titles(results), b.Title)
					})
				}
			}
		}
		return true
	})
}

func TestSearchHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(catalog.Default()).Search(ctx, "dune")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, KindUnexpected, Classify(err))
}

func TestMatches(t *testing.T) {
	b := domain.NewBook("Moby Dick", "Herman Melville", 3.5)
	assert.True(t, Matches(b, "moby"))
	assert.True(t, Matches(b, "MELVILLE"))
	assert.True(t, Matches(b, "y D"))
	assert.False(t, Matches(b, "gatsby"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindNone, Classify(nil))
	assert.Equal(t, KindEmptyQuery, Classify(ErrEmptyQuery))
	assert.Equal(t, KindNoMatches, Classify(fmt.Errorf("wrapped: %w", ErrNoMatches)))
	assert.Equal(t, KindUnexpected, Classify(errors.New("disk on fire")))

	assert.Equal(t, "Please enter a search term", KindEmptyQuery.Message())
	assert.Equal(t, "No books found matching your search", KindNoMatches.Message())
	assert.Equal(t, "An error occurred while searching", KindUnexpected.Message())
	assert.Equal(t, "", KindNone.Message())
	assert.Equal(t, "no_matches", KindNoMatches.String())
}

func swapCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if i%2 == 0 {
			sb.WriteString(strings.ToUpper(string(r)))
		} else {
			sb.WriteString(strings.ToLower(string(r)))
		}
	}
	return sb.String()
}
