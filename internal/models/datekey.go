package models

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the only serialized form of a DateKey.
const DateKeyLayout = "2006-01-02"

// MaxYear is the last year DateKeyLayout can represent.
const MaxYear = 9999

// DateKey is a calendar date without a time of day or zone. It is
// comparable with == and safe to use as a map key.
type DateKey struct {
	year  int
	month time.Month
	day   int
}

// NewDateKey builds a key, normalizing overflow the way time.Date does
// (month 13 is January of the next year, day 0 the last day of the
// previous month).
func NewDateKey(year int, month time.Month, day int) DateKey {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateKeyOf returns the calendar date of t in t's own location.
func DateKeyOf(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{year: y, month: m, day: d}
}

// ParseDateKey accepts strictly YYYY-MM-DD.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return DateKey{}, fmt.Errorf("parse date key %q: %w", s, err)
	}
	return fromTime(t), nil
}

func fromTime(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{year: y, month: m, day: d}
}

// utc is midnight UTC of the date; day arithmetic on it never crosses a
// DST edge.
func (k DateKey) utc() time.Time {
	return time.Date(k.year, k.month, k.day, 0, 0, 0, 0, time.UTC)
}

func (k DateKey) IsZero() bool          { return k == DateKey{} }
func (k DateKey) Year() int             { return k.year }
func (k DateKey) Month() time.Month     { return k.month }
func (k DateKey) Day() int              { return k.day }
func (k DateKey) Weekday() time.Weekday { return k.utc().Weekday() }
func (k DateKey) AddDays(n int) DateKey { return fromTime(k.utc().AddDate(0, 0, n)) }
func (k DateKey) Before(o DateKey) bool { return k.Compare(o) < 0 }
func (k DateKey) After(o DateKey) bool  { return k.Compare(o) > 0 }

// String is the YYYY-MM-DD form; the zero key is "".
func (k DateKey) String() string {
	if k.IsZero() {
		return ""
	}
	return k.utc().Format(DateKeyLayout)
}

// Compare returns -1, 0 or +1.
func (k DateKey) Compare(o DateKey) int {
	switch {
	case k.year != o.year:
		return cmpInt(k.year, o.year)
	case k.month != o.month:
		return cmpInt(int(k.month), int(o.month))
	default:
		return cmpInt(k.day, o.day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// In returns the start of the day in loc.
func (k DateKey) In(loc *time.Location) time.Time {
	return time.Date(k.year, k.month, k.day, 0, 0, 0, 0, loc)
}

// MarshalText writes YYYY-MM-DD, or "" for the zero key. Years that do
// not fit four digits are an error.
func (k DateKey) MarshalText() ([]byte, error) {
	if !k.IsZero() && (k.year < 0 || k.year > MaxYear) {
		return nil, fmt.Errorf("date key year %d out of range", k.year)
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts YYYY-MM-DD, and "" as the zero key.
func (k *DateKey) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*k = DateKey{}
		return nil
	}
	parsed, err := ParseDateKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start DateKey `json:"start"`
	End   DateKey `json:"end"`
}

// Contains reports whether k lies in [Start, End].
func (r DateRange) Contains(k DateKey) bool {
	return !k.Before(r.Start) && !k.After(r.End)
}

// Days is the number of days in the range.
func (r DateRange) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(r.End.utc().Sub(r.Start.utc()).Hours()/24) + 1
}

// WeekOf returns the Sunday-start week containing ref.
func WeekOf(ref DateKey) DateRange {
	start := ref.AddDays(-int(ref.Weekday()))
	return DateRange{Start: start, End: start.AddDays(6)}
}

// MonthOf returns the first through last day of ref's month.
func MonthOf(ref DateKey) DateRange {
	return DateRange{
		Start: NewDateKey(ref.Year(), ref.Month(), 1),
		End:   NewDateKey(ref.Year(), ref.Month()+1, 0),
	}
}
