package models

// RunLogEntry is one date's workout summary.
type RunLogEntry struct {
	TimeSeconds int      `json:"timeSec"`
	DistanceKm  *float64 `json:"distanceKm"`
	Gym         bool     `json:"gym"`
}

// IsEmpty reports whether the entry carries nothing worth storing.
func (e RunLogEntry) IsEmpty() bool {
	return e.TimeSeconds <= 0 && e.Distance() <= 0 && !e.Gym
}

// Distance returns the distance with null read as 0.
func (e RunLogEntry) Distance() float64 {
	if e.DistanceKm == nil {
		return 0
	}
	return *e.DistanceKm
}

// Totals is a range aggregate.
type Totals struct {
	TimeSeconds int     `json:"total_time_seconds"`
	DistanceKm  float64 `json:"total_distance_km"`
}

// Add folds an entry into the totals.
func (t Totals) Add(e RunLogEntry) Totals {
	t.TimeSeconds += e.TimeSeconds
	t.DistanceKm += e.Distance()
	return t
}

// RangeSummary is a labelled aggregate ready for display.
type RangeSummary struct {
	Range  DateRange `json:"range"`
	Totals Totals    `json:"totals"`
	Text   string    `json:"text"` // e.g. "Week: 15:00 · 7.50 km"
}

// Summary holds the week and month aggregates for a reference date.
type Summary struct {
	Date  DateKey      `json:"date"`
	Week  RangeSummary `json:"week"`
	Month RangeSummary `json:"month"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date          DateKey      `json:"date"`
	Day           int          `json:"day"`
	InMonth       bool         `json:"in_month"`
	Entry         *RunLogEntry `json:"entry,omitempty"`
	GymBadge      bool         `json:"gym_badge"`
	DistanceLabel string       `json:"distance_label,omitempty"`
	MinutesLabel  string       `json:"minutes_label,omitempty"`
}

// CalendarMonth is a Sunday-start month grid padded to whole weeks.
type CalendarMonth struct {
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Title  string        `json:"title"`
	Days   []CalendarDay `json:"days"`
	Totals Totals        `json:"totals"`
}
