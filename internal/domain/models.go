package domain

import "strconv"

// Book is a single catalog record
type Book struct {
	Title  string
	Author string
	Rating *float64 // nil when the book has no rating
}

// NewBook creates a rated book
func NewBook(title, author string, rating float64) Book {
	return Book{Title: title, Author: author, Rating: &rating}
}

// NewUnratedBook creates a book without a rating
func NewUnratedBook(title, author string) Book {
	return Book{Title: title, Author: author}
}

// HasRating reports whether the book carries a rating
func (b Book) HasRating() bool {
	return b.Rating != nil
}

// EffectiveRating is the rating used for ordering; an absent rating counts as 0
func (b Book) EffectiveRating() float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

// RatingLabel formats the rating for display ("4.5/5" or "No rating")
func (b Book) RatingLabel() string {
	if b.Rating == nil {
		return "No rating"
	}
	return strconv.FormatFloat(*b.Rating, 'f', -1, 64) + "/5"
}
