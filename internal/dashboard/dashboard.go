package dashboard

import "math"

// Metric is a headline number shown as a card
type Metric struct {
	Label    string
	Value    string
	LinkText string // empty when the card has no link
}

// WeeklySpend is one bar of the wasted-spend chart
type WeeklySpend struct {
	Week   string
	Wasted int
	Normal int
}

// Total is the full height of the stacked bar
func (w WeeklySpend) Total() int {
	return w.Wasted + w.Normal
}

// Account is a row of the accounts-requiring-attention table
type Account struct {
	Name        string
	Insights    int
	WastedSpend string
	Spend       string
	Conversions int
	CPA         string
	ROAS        string
}

// Data is everything the dashboard renders
type Data struct {
	User        string
	Period      string
	Range       string
	Metrics     []Metric
	Spend       []WeeklySpend
	ChartMax    int
	ChartTicks  []int
	Accounts    []Account
	InsightsNew int
}

// MockData returns the static sample dashboard
func MockData() Data {
	return Data{
		User:   "Richard",
		Period: "1 Sept - 3 Oct",
		Range:  "Last 30 days",
		Metrics: []Metric{
			{Label: "Wasted spend (last 30 days)", Value: "$2,539.45"},
			{Label: "Spend (last 30 days)", Value: "$40,492"},
			{Label: "Wasted spend insights", Value: "6", LinkText: "View all"},
			{Label: "All insights", Value: "18", LinkText: "View all"},
		},
		Spend: []WeeklySpend{
			{Week: "2-8 Sep", Wasted: 200, Normal: 400},
			{Week: "9-15 Sep", Wasted: 450, Normal: 300},
			{Week: "Last week", Wasted: 250, Normal: 200},
			{Week: "This week", Wasted: 200, Normal: 150},
		},
		ChartMax:   800,
		ChartTicks: []int{0, 200, 400, 600, 800},
		Accounts: []Account{
			{Name: "Globex Corporation", Insights: 8, WastedSpend: "$2,103.50", Spend: "$3,013.56", Conversions: 305, CPA: "$103.43", ROAS: "2%"},
			{Name: "Soylent Corp", Insights: 3, WastedSpend: "$428.50", Spend: "$1,204.56", Conversions: 105, CPA: "$115.43", ROAS: "2%"},
		},
		InsightsNew: 6,
	}
}

// Scale maps value onto 0..height rows relative to max, rounding to nearest.
// Values outside 0..max are clamped; a non-positive max or height gives 0.
func Scale(value, max, height int) int {
	if max <= 0 || height <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return height
	}
	return int(math.Round(float64(value) / float64(max) * float64(height)))
}

// Greeting picks the salutation for an hour of the day (0-23)
func Greeting(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// View is the dashboard sub-tab
type View int

const (
	ViewOverview View = iota
	ViewInsights
)

func (v View) String() string {
	if v == ViewInsights {
		return "Key insights"
	}
	return "Overview"
}

// Toggle switches between the two views
func (v View) Toggle() View {
	if v == ViewOverview {
		return ViewInsights
	}
	return ViewOverview
}
