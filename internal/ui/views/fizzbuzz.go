package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"bookshelf/internal/fizzbuzz"
)

// FizzBuzzRenderer renders the FizzBuzz grid
type FizzBuzzRenderer struct {
	styles *Styles
}

// NewFizzBuzzRenderer creates a new FizzBuzz renderer
func NewFizzBuzzRenderer(styles *Styles) *FizzBuzzRenderer {
	return &FizzBuzzRenderer{styles: styles}
}

// RenderGrid lays values out columns wide and shows rows [offset, offset+height)
func (fr *FizzBuzzRenderer) RenderGrid(values []string, columns, offset, height int) string {
	if len(values) == 0 || columns <= 0 {
		return fr.styles.Dim.Render("Nothing to count")
	}

	var grid [][]string
	for i := 0; i < len(values); i += columns {
		end := i + columns
		if end > len(values) {
			end = len(values)
		}
		row := make([]string, columns)
		copy(row, values[i:end])
		grid = append(grid, row)
	}

	start, end := window(len(grid), offset, height)
	visible := grid[start:end]

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(fr.styles.Border).
		BorderRow(false).
		Rows(visible...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := fr.styles.Cell.Width(10).Align(lipgloss.Center)
			if row < 0 || row >= len(visible) || col >= len(visible[row]) {
				return base
			}
			return base.Inherit(fr.styles.FizzBuzzStyle(fizzbuzz.KindOf(visible[row][col])))
		})

	var lines []string
	lines = append(lines, fr.styles.Dim.Render(fmt.Sprintf("Counting 1 to %d", len(values))))
	if start > 0 {
		lines = append(lines, fr.styles.Scroll.Render(fmt.Sprintf("↑ %d more rows above ↑", start)))
	}
	lines = append(lines, t.Render())
	if below := len(grid) - end; below > 0 {
		lines = append(lines, fr.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows below ↓", below)))
	}
	lines = append(lines, fr.legend())
	return strings.Join(lines, "\n")
}

func (fr *FizzBuzzRenderer) legend() string {
	return strings.Join([]string{
		fr.styles.Fizz.Render("Fizz") + fr.styles.Dim.Render(" ÷3"),
		fr.styles.Buzz.Render("Buzz") + fr.styles.Dim.Render(" ÷5"),
		fr.styles.FizzBuzz.Render("FizzBuzz") + fr.styles.Dim.Render(" ÷15"),
	}, "   ")
}

// RenderPlain is the uncoloured one-value-per-line form used by the CLI
func RenderPlain(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, "\n") + "\n"
}
