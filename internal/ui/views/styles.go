package views

import (
	"github.com/charmbracelet/lipgloss"

	"bookshelf/internal/fizzbuzz"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Prompt      lipgloss.Style
	Query       lipgloss.Style
	InfoBox     lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	Error       lipgloss.Style
	Loading     lipgloss.Style
	Success     lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	Border      lipgloss.Style
	Rating      lipgloss.Style
	NoRating    lipgloss.Style
	Fizz        lipgloss.Style
	Buzz        lipgloss.Style
	FizzBuzz    lipgloss.Style
	Number      lipgloss.Style
	Card        lipgloss.Style
	CardValue   lipgloss.Style
	Link        lipgloss.Style
	BarWasted   lipgloss.Style
	BarNormal   lipgloss.Style
	SectionHead lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Query:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("62")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),             // green
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		Cell:        lipgloss.NewStyle().Padding(0, 1),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Rating:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		NoRating:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Fizz:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Buzz:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		FizzBuzz:    lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
		Number:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		CardValue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		Link:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		BarWasted:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		BarNormal:   lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		SectionHead: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}

// FizzBuzzStyle picks the colour for a FizzBuzz cell
func (s *Styles) FizzBuzzStyle(kind fizzbuzz.Kind) lipgloss.Style {
	switch kind {
	case fizzbuzz.KindFizz:
		return s.Fizz
	case fizzbuzz.KindBuzz:
		return s.Buzz
	case fizzbuzz.KindFizzBuzz:
		return s.FizzBuzz
	default:
		return s.Number
	}
}
