package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookshelf/internal/dashboard"
	"bookshelf/internal/request"
	"bookshelf/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Height    int
	ActiveTab state.Tab

	// Search tab
	Query          string
	InputLine      string // rendered text input; empty unless editing
	Spinner        string // current spinner frame
	Search         request.State
	ResultsOffset  int
	ViewportHeight int

	// FizzBuzz tab
	FizzBuzz       []string
	FizzBuzzOffset int

	// Dashboard tab
	Dashboard     dashboard.Data
	DashboardView dashboard.View
	Greeting      string

	StatusMessage string
	ShowHelp      bool
	HelpContent   string
	ShortHelp     string
}

// chromeLines counts rows outside any tab body: container padding (2),
// tab bar, gap, status line, help line
const chromeLines = 6

// ViewportRows is how many body rows the given tab can show in height lines
func ViewportRows(tab state.Tab, height int) int {
	overhead := chromeLines
	switch tab {
	case state.TabSearch:
		overhead += 3 + 4 + 2 // query and status lines, table borders and header, scroll hints
	case state.TabFizzBuzz:
		overhead += 1 + 2 + 1 + 2 // caption, borders, legend, scroll hints
	}
	rows := height - overhead
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	books       *BookRenderer
	fizzbuzz    *FizzBuzzRenderer
	dashboard   *DashboardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		books:       NewBookRenderer(styles),
		fizzbuzz:    NewFizzBuzzRenderer(styles),
		dashboard:   NewDashboardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Dashboard exposes the dashboard renderer for headless output
func (r *Renderer) Dashboard() *DashboardRenderer {
	return r.dashboard
}

// Books exposes the book renderer for headless output
func (r *Renderer) Books() *BookRenderer {
	return r.books
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTabBar(vs))
	content.WriteString("\n\n")
	content.WriteString(r.renderBody(vs))

	footer := r.renderFooter(vs)

	// Push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := vs.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	footerLines := strings.Count(footer, "\n") + 1
	if pad := availableLines - currentLines - footerLines; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if vs.ShowHelp && vs.HelpContent != "" {
		helpContent := clipLines(vs.HelpContent, vs.Height-4)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, vs.Height, vs.Width, r.styles.InfoBox)
	}

	return finalContent
}

func (r *Renderer) renderBody(vs ViewState) string {
	switch vs.ActiveTab {
	case state.TabFizzBuzz:
		return r.fizzbuzz.RenderGrid(vs.FizzBuzz, state.FizzBuzzColumns, vs.FizzBuzzOffset, vs.ViewportHeight)
	case state.TabDashboard:
		return r.dashboard.RenderDashboard(vs.Dashboard, vs.DashboardView, vs.Greeting)
	default:
		return r.books.RenderSearch(vs)
	}
}

func (r *Renderer) renderTabBar(vs ViewState) string {
	parts := []string{r.styles.Title.Render("bookshelf"), "  "}
	for i, t := range state.Tabs {
		label := string(rune('1'+i)) + " " + t.Title()
		if t == vs.ActiveTab {
			parts = append(parts, r.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, r.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderFooter(vs ViewState) string {
	status := ""
	if vs.StatusMessage != "" {
		status = r.styles.Status.Render(vs.StatusMessage)
	}
	return status + "\n" + r.styles.Help.Render(vs.ShortHelp)
}

func clipLines(s string, max int) string {
	if max < 5 {
		max = 5
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	lines = lines[:max]
	lines[max-1] = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("↓ (more: press H for the pager)")
	return strings.Join(lines, "\n")
}
