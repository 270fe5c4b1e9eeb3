package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"bookshelf/internal/domain"
	"bookshelf/internal/request"
)

// BookRenderer renders the search tab
type BookRenderer struct {
	styles *Styles
}

// NewBookRenderer creates a new book renderer
func NewBookRenderer(styles *Styles) *BookRenderer {
	return &BookRenderer{styles: styles}
}

// RenderSearch renders the query line, the request status and the result table
func (br *BookRenderer) RenderSearch(state ViewState) string {
	var b strings.Builder

	b.WriteString(br.renderQueryLine(state))
	b.WriteString("\n")
	b.WriteString(br.renderStatus(state))
	b.WriteString("\n\n")

	if state.Search.Phase == request.PhaseSuccess {
		b.WriteString(br.RenderTable(state.Search.Results, state.ResultsOffset, state.ViewportHeight))
	}
	return b.String()
}

func (br *BookRenderer) renderQueryLine(state ViewState) string {
	if state.InputLine != "" {
		return state.InputLine
	}
	prompt := br.styles.Prompt.Render("Search: ")
	if state.Query == "" {
		return prompt + br.styles.Dim.Render("press / to search by title or author")
	}
	return prompt + br.styles.Query.Render(state.Query)
}

func (br *BookRenderer) renderStatus(state ViewState) string {
	st := state.Search
	switch st.Phase {
	case request.PhaseLoading:
		return br.styles.Loading.Render(strings.TrimSpace(state.Spinner + " Searching..."))
	case request.PhaseError:
		return br.styles.Error.Render(st.Message)
	case request.PhaseSuccess:
		if st.RequestID == "" {
			return br.styles.Dim.Render(fmt.Sprintf("All %d books", len(st.Results)))
		}
		return br.styles.Success.Render(countLabel(len(st.Results)))
	default:
		return br.styles.Dim.Render("Search closed")
	}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 book found"
	}
	return fmt.Sprintf("%d books found", n)
}

// RenderTable renders books[offset:offset+height] with scroll indicators.
// A non-positive height renders every row.
func (br *BookRenderer) RenderTable(books []domain.Book, offset, height int) string {
	start, end := window(len(books), offset, height)
	visible := books[start:end]

	rows := make([][]string, 0, len(visible))
	for i, book := range visible {
		rows = append(rows, []string{
			strconv.Itoa(start + i + 1),
			book.Title,
			book.Author,
			book.RatingLabel(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(br.styles.Border).
		Headers("#", "Title", "Author", "Rating").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return br.styles.Header
			}
			if col == 3 && row >= 0 && row < len(visible) {
				if visible[row].HasRating() {
					return br.styles.Cell.Inherit(br.styles.Rating)
				}
				return br.styles.Cell.Inherit(br.styles.NoRating)
			}
			return br.styles.Cell
		})

	var lines []string
	if start > 0 {
		lines = append(lines, br.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	lines = append(lines, t.Render())
	if below := len(books) - end; below > 0 {
		lines = append(lines, br.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

// window clamps a scroll window of height rows at offset to n items
func window(n, offset, height int) (int, int) {
	if height <= 0 || height > n {
		height = n
	}
	if offset > n-height {
		offset = n - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset, offset + height
}
