package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"bookshelf/internal/dashboard"
)

// ChartHeight is the number of rows a full-scale bar occupies
const ChartHeight = 8

const barWidth = 6

// DashboardRenderer renders the dashboard tab
type DashboardRenderer struct {
	styles *Styles
}

// NewDashboardRenderer creates a new dashboard renderer
func NewDashboardRenderer(styles *Styles) *DashboardRenderer {
	return &DashboardRenderer{styles: styles}
}

// RenderDashboard renders the header, the view switcher and the active view
func (dr *DashboardRenderer) RenderDashboard(data dashboard.Data, view dashboard.View, greeting string) string {
	sections := []string{
		dr.renderHeader(data, greeting),
		dr.renderViewTabs(data, view),
	}

	if view == dashboard.ViewInsights {
		var insightCards []dashboard.Metric
		for _, m := range data.Metrics {
			if m.LinkText != "" {
				insightCards = append(insightCards, m)
			}
		}
		sections = append(sections, dr.RenderCards(insightCards), dr.RenderAccounts(data.Accounts))
	} else {
		sections = append(sections,
			dr.RenderCards(data.Metrics),
			dr.RenderChart(data),
			dr.RenderAccounts(data.Accounts),
		)
	}
	return strings.Join(sections, "\n\n")
}

func (dr *DashboardRenderer) renderHeader(data dashboard.Data, greeting string) string {
	title := dr.styles.Title.Render(fmt.Sprintf("%s %s", greeting, data.User))
	sub := dr.styles.Dim.Render(fmt.Sprintf("What's been happening between %s", data.Period))
	rng := dr.styles.Status.Render("[" + data.Range + "]")
	return lipgloss.JoinVertical(lipgloss.Left, title+"  "+rng, sub)
}

func (dr *DashboardRenderer) renderViewTabs(data dashboard.Data, view dashboard.View) string {
	tabs := []dashboard.View{dashboard.ViewOverview, dashboard.ViewInsights}
	parts := make([]string, 0, len(tabs))
	for _, v := range tabs {
		label := v.String()
		if v == dashboard.ViewInsights && data.InsightsNew > 0 {
			label = fmt.Sprintf("%s (%d)", label, data.InsightsNew)
		}
		if v == view {
			parts = append(parts, dr.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, dr.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + dr.styles.Dim.Render("  (v to switch)")
}

// RenderCards renders metrics side by side
func (dr *DashboardRenderer) RenderCards(metrics []dashboard.Metric) string {
	cards := make([]string, 0, len(metrics))
	for _, m := range metrics {
		lines := []string{
			dr.styles.Dim.Render(m.Label),
			dr.styles.CardValue.Render(m.Value),
		}
		if m.LinkText != "" {
			lines = append(lines, dr.styles.Link.Render(m.LinkText))
		}
		cards = append(cards, dr.styles.Card.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// RenderChart draws the weekly spend as stacked vertical bars: normal spend
// at the bottom, wasted spend on top, with the y axis labelled at each tick
func (dr *DashboardRenderer) RenderChart(data dashboard.Data) string {
	type bar struct{ normal, total int }
	bars := make([]bar, len(data.Spend))
	for i, w := range data.Spend {
		total := dashboard.Scale(w.Total(), data.ChartMax, ChartHeight)
		normal := dashboard.Scale(w.Normal, data.ChartMax, ChartHeight)
		if normal > total {
			normal = total
		}
		bars[i] = bar{normal: normal, total: total}
	}

	labels := make(map[int]string, len(data.ChartTicks))
	labelWidth := 0
	for _, tick := range data.ChartTicks {
		l := "$" + strconv.Itoa(tick)
		labels[dashboard.Scale(tick, data.ChartMax, ChartHeight)] = l
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	block := strings.Repeat("█", barWidth)
	blank := strings.Repeat(" ", barWidth)
	colWidth := barWidth + 4

	var lines []string
	lines = append(lines, dr.styles.SectionHead.Render("Wasted spend by week"))
	for row := ChartHeight; row >= 1; row-- {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%*s │", labelWidth, labels[row]))
		for _, bar := range bars {
			cell := blank
			switch {
			case row <= bar.normal:
				cell = dr.styles.BarNormal.Render(block)
			case row <= bar.total:
				cell = dr.styles.BarWasted.Render(block)
			}
			b.WriteString("  " + cell + "  ")
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, fmt.Sprintf("%*s └%s", labelWidth, labels[0], strings.Repeat("─", colWidth*len(bars))))

	var axis strings.Builder
	axis.WriteString(strings.Repeat(" ", labelWidth+2))
	for _, w := range data.Spend {
		axis.WriteString(lipgloss.PlaceHorizontal(colWidth, lipgloss.Center, truncate(w.Week, colWidth)))
	}
	lines = append(lines, dr.styles.Dim.Render(axis.String()))
	lines = append(lines, dr.styles.BarWasted.Render("■")+" Wasted spend  "+dr.styles.BarNormal.Render("■")+" Spend")

	return strings.Join(lines, "\n")
}

// RenderAccounts renders the accounts requiring attention
func (dr *DashboardRenderer) RenderAccounts(accounts []dashboard.Account) string {
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{
			a.Name,
			strconv.Itoa(a.Insights),
			a.WastedSpend,
			a.Spend,
			strconv.Itoa(a.Conversions),
			a.CPA,
			a.ROAS,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dr.styles.Border).
		Headers("Account", "Insights", "Wasted spend", "Spend", "Conv.", "CPA", "ROAS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return dr.styles.Header
			}
			if col == 1 {
				return dr.styles.Cell.Inherit(dr.styles.Link)
			}
			return dr.styles.Cell
		})

	return dr.styles.SectionHead.Render("Accounts requiring attention") + "\n" + t.Render()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
