package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"bookshelf/internal/ui/input/types"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer builds help text from the key map
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

func (r *HelpRenderer) sections() []helpSection {
	k := r.keys
	return []helpSection{
		{"Tabs", []key.Binding{k.NextTab, k.PrevTab, k.SearchTab, k.FizzBuzzTab, k.DashboardTab}},
		{"Book Search", []key.Binding{k.Search, k.Reset}},
		{"Scrolling", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}},
		{"Dashboard", []key.Binding{k.View}},
		{"Other", []key.Binding{k.Help, k.HelpPager, k.Quit}},
	}
}

// RenderHelpContent renders the help information with colors
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Bookshelf Help"))
	help.WriteString("\n")

	for _, section := range r.sections() {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render(
		"  Search matches titles and authors, ignoring case. Results are ranked by rating."))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
