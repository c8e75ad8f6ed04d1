package models

import "time"

// EngineEventKind classifies what the host has to do after an engine call.
type EngineEventKind string

const (
	EventRender      EngineEventKind = "render"
	EventPhaseChange EngineEventKind = "phase_change"
	EventSignal      EngineEventKind = "signal"
	EventWakeAcquire EngineEventKind = "wake_acquire"
	EventWakeRelease EngineEventKind = "wake_release"
	EventStopped     EngineEventKind = "stopped"
)

// EngineEvent is a side effect requested by the interval engine.
// From/To are set for phase changes, Signal for signal requests.
type EngineEvent struct {
	Kind   EngineEventKind `json:"kind"`
	From   Phase           `json:"from,omitempty"`
	To     Phase           `json:"to,omitempty"`
	Signal Signal          `json:"signal,omitempty"`
}

// Workout journal types.
const (
	WorkoutStart          = "START"
	WorkoutPause          = "PAUSE"
	WorkoutReset          = "RESET"
	WorkoutPhaseChange    = "PHASE_CHANGE"
	WorkoutFinish         = "FINISH"
	WorkoutSettingsChange = "SETTINGS_CHANGE"
)

// WorkoutEvent is a single journal entry.
type WorkoutEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // START | PAUSE | RESET | PHASE_CHANGE | FINISH | SETTINGS_CHANGE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
