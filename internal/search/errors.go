package search

import "errors"

// Kind classifies why a search produced no results
type Kind int

const (
	KindNone Kind = iota
	KindEmptyQuery
	KindNoMatches
	KindUnexpected
)

// User-facing messages, one per kind
const (
	MessageEmptyQuery = "Please enter a search term"
	MessageNoMatches  = "No books found matching your search"
	MessageUnexpected = "An error occurred while searching"
)

var (
	// ErrEmptyQuery is returned for blank or whitespace-only queries
	ErrEmptyQuery = errors.New("search: empty query")
	// ErrNoMatches is returned when a well-formed query matched nothing
	ErrNoMatches = errors.New("search: no matches")
)

// Classify maps an error to its kind. Unknown errors are unexpected failures.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEmptyQuery):
		return KindEmptyQuery
	case errors.Is(err, ErrNoMatches):
		return KindNoMatches
	default:
		return KindUnexpected
	}
}

// Message returns the user-facing message for a kind
func (k Kind) Message() string {
	switch k {
	case KindEmptyQuery:
		return MessageEmptyQuery
	case KindNoMatches:
		return MessageNoMatches
	case KindUnexpected:
		return MessageUnexpected
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmptyQuery:
		return "empty_query"
	case KindNoMatches:
		return "no_matches"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}
