package state

import (
	"bookshelf/internal/dashboard"
	"bookshelf/internal/request"
)

// Tab identifies a top-level screen. Values match the ui.start_tab config key.
type Tab string

const (
	TabSearch    Tab = "search"
	TabFizzBuzz  Tab = "fizzbuzz"
	TabDashboard Tab = "dashboard"
)

// Tabs lists the tabs in display order
var Tabs = []Tab{TabSearch, TabFizzBuzz, TabDashboard}

// Title is the label shown in the tab bar
func (t Tab) Title() string {
	switch t {
	case TabFizzBuzz:
		return "FizzBuzz"
	case TabDashboard:
		return "Dashboard"
	default:
		return "Book Search"
	}
}

// ParseTab maps a config value to a tab, defaulting to search
func ParseTab(name string) Tab {
	for _, t := range Tabs {
		if string(t) == name {
			return t
		}
	}
	return TabSearch
}

// FizzBuzzColumns is the width of the FizzBuzz grid
const FizzBuzzColumns = 10

// AppState contains all the application state
type AppState struct {
	ActiveTab Tab

	// Search tab
	Query         string        // text last submitted
	Search        request.State // latest snapshot from the request machine
	ResultsOffset int           // first visible result row

	// FizzBuzz tab
	FizzBuzz       []string
	FizzBuzzOffset int // first visible grid row

	// Dashboard tab
	Dashboard     dashboard.Data
	DashboardView dashboard.View

	// UI state
	ViewportHeight int // rows available for the active tab's body
	ShowHelp       bool
	StatusMessage  string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ActiveTab:      TabSearch,
		Dashboard:      dashboard.MockData(),
		ViewportHeight: 20, // Default
	}
}

// SetTab activates t and reports whether it changed
func (s *AppState) SetTab(t Tab) bool {
	if s.ActiveTab == t {
		return false
	}
	s.ActiveTab = t
	return true
}

// CycleTab moves delta tabs to the right, wrapping around
func (s *AppState) CycleTab(delta int) Tab {
	idx := 0
	for i, t := range Tabs {
		if t == s.ActiveTab {
			idx = i
			break
		}
	}
	n := len(Tabs)
	idx = ((idx+delta)%n + n) % n
	s.ActiveTab = Tabs[idx]
	return s.ActiveTab
}

// ApplySearch stores a new request snapshot. Result scrolling restarts at
// the top whenever a new result set lands.
func (s *AppState) ApplySearch(st request.State) {
	if st.Phase == request.PhaseSuccess {
		s.ResultsOffset = 0
	}
	s.Search = st
}

// IsLoading reports whether a search is in flight
func (s *AppState) IsLoading() bool {
	return s.Search.Phase == request.PhaseLoading
}

// ResultCount is the number of rows on the search tab
func (s *AppState) ResultCount() int {
	if s.Search.Phase != request.PhaseSuccess {
		return 0
	}
	return len(s.Search.Results)
}

// FizzBuzzRows is the number of rows in the FizzBuzz grid
func (s *AppState) FizzBuzzRows() int {
	return (len(s.FizzBuzz) + FizzBuzzColumns - 1) / FizzBuzzColumns
}

// ScrollableRows returns the row count of the active tab's scrollable body
func (s *AppState) ScrollableRows() int {
	switch s.ActiveTab {
	case TabSearch:
		return s.ResultCount()
	case TabFizzBuzz:
		return s.FizzBuzzRows()
	default:
		return 0
	}
}

// Scroll moves the active tab's offset by delta rows, clamped to the content
func (s *AppState) Scroll(delta int) {
	offset := s.offset()
	if offset == nil {
		return
	}
	*offset = clamp(*offset+delta, 0, s.maxOffset())
}

// ScrollTo jumps to the top (false) or bottom (true) of the active tab
func (s *AppState) ScrollTo(bottom bool) {
	offset := s.offset()
	if offset == nil {
		return
	}
	if bottom {
		*offset = s.maxOffset()
	} else {
		*offset = 0
	}
}

func (s *AppState) offset() *int {
	switch s.ActiveTab {
	case TabSearch:
		return &s.ResultsOffset
	case TabFizzBuzz:
		return &s.FizzBuzzOffset
	default:
		return nil
	}
}

func (s *AppState) maxOffset() int {
	m := s.ScrollableRows() - s.ViewportHeight
	if m < 0 {
		return 0
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
