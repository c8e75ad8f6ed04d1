package models

// SettingField names a user-editable timer setting. The value doubles as
// the storage key the setting is persisted under.
type SettingField string

const (
	FieldRunSec    SettingField = "runSec"
	FieldWalkSec   SettingField = "walkSec"
	FieldSets      SettingField = "setCount"
	FieldWarmupSec SettingField = "warmupSec"
	FieldFinishSec SettingField = "finishSec"
)

// SettingFields lists every field in display order.
var SettingFields = []SettingField{
	FieldRunSec,
	FieldWalkSec,
	FieldSets,
	FieldWarmupSec,
	FieldFinishSec,
}

// Valid reports whether f is one of the known fields.
func (f SettingField) Valid() bool {
	switch f {
	case FieldRunSec, FieldWalkSec, FieldSets, FieldWarmupSec, FieldFinishSec:
		return true
	}
	return false
}

// Min is the smallest value the field accepts.
func (f SettingField) Min() int {
	switch f {
	case FieldWarmupSec, FieldFinishSec:
		return 0
	default:
		return 1
	}
}

// Clamp raises v to the field minimum.
func (f SettingField) Clamp(v int) int {
	if v < f.Min() {
		return f.Min()
	}
	return v
}

// Phase returns the phase whose duration the field controls.
// FieldSets controls no phase.
func (f SettingField) Phase() (Phase, bool) {
	switch f {
	case FieldRunSec:
		return PhaseRun, true
	case FieldWalkSec:
		return PhaseWalk, true
	case FieldWarmupSec:
		return PhaseWarmup, true
	case FieldFinishSec:
		return PhaseFinish, true
	}
	return "", false
}

// Settings is the workout configuration.
type Settings struct {
	RunSeconds    int `json:"run_sec"`
	WalkSeconds   int `json:"walk_sec"`
	Sets          int `json:"sets"`
	WarmupSeconds int `json:"warmup_sec"`
	FinishSeconds int `json:"finish_sec"`
}

// DefaultSettings is what a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		RunSeconds:    60,
		WalkSeconds:   120,
		Sets:          4,
		WarmupSeconds: 30,
		FinishSeconds: 60,
	}
}

// Get returns the value of a field; unknown fields read as 0.
func (s Settings) Get(f SettingField) int {
	switch f {
	case FieldRunSec:
		return s.RunSeconds
	case FieldWalkSec:
		return s.WalkSeconds
	case FieldSets:
		return s.Sets
	case FieldWarmupSec:
		return s.WarmupSeconds
	case FieldFinishSec:
		return s.FinishSeconds
	}
	return 0
}

// With returns a copy of s with field f set to the clamped value v.
func (s Settings) With(f SettingField, v int) Settings {
	v = f.Clamp(v)
	switch f {
	case FieldRunSec:
		s.RunSeconds = v
	case FieldWalkSec:
		s.WalkSeconds = v
	case FieldSets:
		s.Sets = v
	case FieldWarmupSec:
		s.WarmupSeconds = v
	case FieldFinishSec:
		s.FinishSeconds = v
	}
	return s
}

// Normalize clamps every field to its minimum.
func (s Settings) Normalize() Settings {
	for _, f := range SettingFields {
		s = s.With(f, s.Get(f))
	}
	return s
}

// PhaseDuration is the countdown a phase starts with.
func (s Settings) PhaseDuration(p Phase) int {
	switch p {
	case PhaseWarmup:
		return s.WarmupSeconds
	case PhaseRun:
		return s.RunSeconds
	case PhaseWalk:
		return s.WalkSeconds
	case PhaseFinish:
		return s.FinishSeconds
	}
	return 0
}
