package fizzbuzz

import "strconv"

// Kind is the category of a FizzBuzz cell
type Kind int

const (
	KindNumber Kind = iota
	KindFizz
	KindBuzz
	KindFizzBuzz
)

// DefaultLimit is how far the grid counts
const DefaultLimit = 100

// Value returns "FizzBuzz" for multiples of 15, "Fizz" for multiples of 3,
// "Buzz" for multiples of 5 and the decimal number otherwise
func Value(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.Itoa(n)
	}
}

// Sequence returns the values for 1..limit
func Sequence(limit int) []string {
	if limit < 1 {
		return nil
	}
	out := make([]string, 0, limit)
	for i := 1; i <= limit; i++ {
		out = append(out, Value(i))
	}
	return out
}

// KindOf classifies a rendered value
func KindOf(value string) Kind {
	switch value {
	case "FizzBuzz":
		return KindFizzBuzz
	case "Fizz":
		return KindFizz
	case "Buzz":
		return KindBuzz
	default:
		return KindNumber
	}
}
