package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"runwalk_timer/internal/models"
)

// ParseMinutes converts a whole-minute form value into seconds. Fractions
// are floored; negative or non-numeric input gives 0.
func ParseMinutes(raw string) int {
	f, ok := parseNumber(raw)
	if !ok || f <= 0 {
		return 0
	}
	return min(models.FloorInt(f), models.MaxSeconds/60) * 60
}

// ParseDistance reads a kilometre value, accepting a comma as decimal
// separator. Empty, non-numeric or negative input gives nil.
func ParseDistance(raw string) *float64 {
	f, ok := parseNumber(strings.ReplaceAll(raw, ",", "."))
	if !ok || f < 0 {
		return nil
	}
	return &f
}

// ParseClock reads "MM:SS" or a plain number of seconds. Unreadable parts
// count as 0 and the result is never negative.
func ParseClock(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if mm, ss, ok := strings.Cut(raw, ":"); ok {
		m, _ := parseNumber(mm)
		s, _ := parseNumber(ss)
		return max(0, models.FloorInt(math.Floor(m)*60+math.Floor(s)))
	}
	f, ok := parseNumber(raw)
	if !ok {
		return 0
	}
	return max(0, models.FloorInt(f))
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// DistanceLabel is the compact calendar label of a distance: 1.5k, 125km,
// 5.5km. Non-positive distances have no label.
func DistanceLabel(km float64) string {
	switch {
	case km <= 0:
		return ""
	case km >= 1000:
		s := strconv.FormatFloat(km/1000, 'f', 1, 64)
		return strings.TrimSuffix(s, ".0") + "k"
	case km >= 100:
		return fmt.Sprintf("%dkm", int(math.Round(km)))
	}
	s := strconv.FormatFloat(km, 'f', 2, 64)
	if strings.HasSuffix(s, ".00") {
		s = strings.TrimSuffix(s, ".00")
	} else if strings.HasSuffix(s, "0") {
		s = strings.TrimSuffix(s, "0")
	}
	return s + "km"
}

// MinutesLabel rounds seconds to whole minutes: 750 -> "13m".
func MinutesLabel(sec int) string {
	if sec <= 0 {
		return ""
	}
	return fmt.Sprintf("%dm", int(math.Round(float64(sec)/60)))
}

// TotalsText renders "Week: 15:00 · 7.50 km".
func TotalsText(label string, t models.Totals) string {
	return fmt.Sprintf("%s: %s · %.2f km", label, models.FormatClock(t.TimeSeconds), t.DistanceKm)
}
