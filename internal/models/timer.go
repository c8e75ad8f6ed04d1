package models

import (
	"fmt"
	"math"
	"time"
)

// Phase is a state of the interval timer.
type Phase string

const (
	PhaseWarmup Phase = "WARMUP"
	PhaseRun    Phase = "RUN"
	PhaseWalk   Phase = "WALK"
	PhaseFinish Phase = "FINISH"
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseWarmup, PhaseRun, PhaseWalk, PhaseFinish:
		return true
	}
	return false
}

// TimerState is the countdown owned by the interval engine.
type TimerState struct {
	Phase            Phase `json:"phase"`
	SecondsRemaining int   `json:"seconds_remaining"`
	TotalElapsed     int   `json:"total_elapsed"`
	CurrentSet       int   `json:"current_set"`
	IsRunning        bool  `json:"is_running"`
}

// TimerRecord is the persisted row of the timer (single row, ID 1).
// A zero ID means nothing was saved yet.
type TimerRecord struct {
	ID        int
	State     TimerState
	UpdatedAt time.Time
}

// Snapshot is what the display renderer receives.
type Snapshot struct {
	TimerState
	Sets         int       `json:"sets"`
	IntervalText string    `json:"interval_text"` // MM:SS of SecondsRemaining
	TotalText    string    `json:"total_text"`    // MM:SS of TotalElapsed
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewSnapshot builds a display snapshot from the engine state.
func NewSnapshot(st TimerState, sets int, at time.Time) Snapshot {
	return Snapshot{
		TimerState:   st,
		Sets:         sets,
		IntervalText: FormatClock(st.SecondsRemaining),
		TotalText:    FormatClock(st.TotalElapsed),
		UpdatedAt:    at,
	}
}

// MaxSeconds bounds every parsed duration or setting so float input
// cannot overflow int.
const MaxSeconds = math.MaxInt32

// FloorInt floors f into [-MaxSeconds, MaxSeconds].
func FloorInt(f float64) int {
	f = math.Floor(f)
	switch {
	case f > MaxSeconds:
		return MaxSeconds
	case f < -MaxSeconds:
		return -MaxSeconds
	}
	return int(f)
}

// FormatClock renders seconds as zero-padded MM:SS. Minutes are not
// wrapped into hours, so 5400 renders as 90:00.
func FormatClock(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
