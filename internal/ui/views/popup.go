package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centres the styled popup over a greyed-out copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	if height < len(baseLines) {
		height = len(baseLines)
	}
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range popupLines {
		row := y + i
		if row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		left, right := splitPlain(baseLines[row], x, modalW)
		baseLines[row] = dim.Render(left) + line + dim.Render(right)
	}
	for i, line := range baseLines {
		if i < y || i >= y+len(popupLines) {
			baseLines[i] = dim.Render(line)
		}
	}
	return strings.Join(baseLines, "\n")
}

// desaturateANSI strips ANSI color/style codes
func desaturateANSI(s string) string {
	return ansi.Strip(s)
}

// splitPlain returns the cells of an unstyled line left of column x and right
// of column x+w, padding so the popup lands at column x. Widths are counted in
// terminal cells, the same way lipgloss measures the popup. A wide glyph that
// straddles an edge of the popup is replaced by blanks.
func splitPlain(line string, x, w int) (string, string) {
	var left, right strings.Builder
	col, state := 0, -1
	for line != "" {
		var cluster string
		var width int
		cluster, line, width, state = uniseg.FirstGraphemeClusterInString(line, state)
		end := col + width
		switch {
		case end <= x:
			left.WriteString(cluster)
		case col >= x+w:
			right.WriteString(cluster)
		default:
			if col < x {
				left.WriteString(strings.Repeat(" ", x-col))
			}
			if end > x+w {
				right.WriteString(strings.Repeat(" ", end-x-w))
			}
		}
		col = end
	}
	if col < x {
		left.WriteString(strings.Repeat(" ", x-col))
	}
	return left.String(), right.String()
}

// StripANSI removes colour and style sequences from rendered output
func StripANSI(s string) string {
	return desaturateANSI(s)
}
