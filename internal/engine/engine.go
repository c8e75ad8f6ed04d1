// Package engine holds the interval timer state machine. It performs no
// I/O: every call returns the side effects the host has to carry out.
package engine

import "runwalk_timer/internal/models"

// Engine cycles WARMUP -> RUN -> WALK -> (RUN | FINISH). It is not safe
// for concurrent use; the host serializes calls.
type Engine struct {
	settings models.Settings
	state    models.TimerState
}

// New returns an engine in its initial state.
func New(settings models.Settings) *Engine {
	e := &Engine{settings: settings.Normalize()}
	e.state = e.initialState()
	return e
}

// Restore resumes a previously saved state as paused. Broken fields are
// repaired; an unknown phase falls back to the initial state.
func Restore(settings models.Settings, st models.TimerState) *Engine {
	e := New(settings)
	if !st.Phase.Valid() {
		return e
	}
	st.IsRunning = false
	if st.SecondsRemaining < 0 {
		st.SecondsRemaining = 0
	}
	if st.TotalElapsed < 0 {
		st.TotalElapsed = 0
	}
	if st.CurrentSet < 1 {
		st.CurrentSet = 1
	}
	if st.CurrentSet > e.settings.Sets {
		st.CurrentSet = e.settings.Sets
	}
	e.state = st
	return e
}

func (e *Engine) initialState() models.TimerState {
	return models.TimerState{
		Phase:            models.PhaseWarmup,
		SecondsRemaining: e.settings.WarmupSeconds,
		CurrentSet:       1,
	}
}

func (e *Engine) State() models.TimerState  { return e.state }
func (e *Engine) Settings() models.Settings { return e.settings }
func (e *Engine) Running() bool             { return e.state.IsRunning }

// Start begins a running session. It is a no-op while already running.
func (e *Engine) Start() []models.EngineEvent {
	if e.state.IsRunning {
		return nil
	}
	e.state.IsRunning = true
	return []models.EngineEvent{
		{Kind: models.EventWakeAcquire},
		{Kind: models.EventRender},
	}
}

// Pause stops the countdown and keeps every other field.
func (e *Engine) Pause() []models.EngineEvent {
	e.state.IsRunning = false
	return []models.EngineEvent{
		{Kind: models.EventWakeRelease},
		{Kind: models.EventRender},
	}
}

// Reset returns to the initial state regardless of phase or running status.
func (e *Engine) Reset() []models.EngineEvent {
	e.state = e.initialState()
	return []models.EngineEvent{
		{Kind: models.EventWakeRelease},
		{Kind: models.EventRender},
	}
}

// Tick advances one second. It does nothing unless the engine is running.
// When the countdown reaches zero the phase transition happens in the
// same call.
func (e *Engine) Tick() []models.EngineEvent {
	if !e.state.IsRunning {
		return nil
	}
	e.state.TotalElapsed++
	e.state.SecondsRemaining--

	var events []models.EngineEvent
	if e.state.SecondsRemaining <= 0 {
		e.state.SecondsRemaining = 0
		events = e.advance()
	}
	return append(events, models.EngineEvent{Kind: models.EventRender})
}

func (e *Engine) advance() []models.EngineEvent {
	switch e.state.Phase {
	case models.PhaseWarmup:
		e.state.CurrentSet = 1
		return e.enter(models.PhaseRun, models.SignalShort)
	case models.PhaseRun:
		return e.enter(models.PhaseWalk, models.SignalMedium)
	case models.PhaseWalk:
		if e.state.CurrentSet >= e.settings.Sets {
			return e.enter(models.PhaseFinish, models.SignalLong)
		}
		e.state.CurrentSet++
		return e.enter(models.PhaseRun, models.SignalShortShort)
	case models.PhaseFinish:
		// terminal until Reset
		e.state.IsRunning = false
		return []models.EngineEvent{
			{Kind: models.EventWakeRelease},
			{Kind: models.EventStopped},
		}
	}
	return nil
}

func (e *Engine) enter(next models.Phase, sig models.Signal) []models.EngineEvent {
	from := e.state.Phase
	e.state.Phase = next
	e.state.SecondsRemaining = e.settings.PhaseDuration(next)
	return []models.EngineEvent{
		{Kind: models.EventPhaseChange, From: from, To: next},
		{Kind: models.EventSignal, Signal: sig},
	}
}

// ApplySetting stores a new setting value, clamped to the field minimum,
// and returns the stored value. While paused, a change to the current
// phase's duration replaces the countdown immediately; every other change
// waits until the phase is next entered. Lowering the set count below the
// current set pulls the current set down with it.
func (e *Engine) ApplySetting(field models.SettingField, value int) (int, []models.EngineEvent) {
	if !field.Valid() {
		return 0, nil
	}
	e.settings = e.settings.With(field, value)
	stored := e.settings.Get(field)

	changed := false
	if field == models.FieldSets && e.state.CurrentSet > stored {
		e.state.CurrentSet = stored
		changed = true
	}
	if p, ok := field.Phase(); ok && !e.state.IsRunning && p == e.state.Phase {
		e.state.SecondsRemaining = stored
		changed = true
	}
	if !changed {
		return stored, nil
	}
	return stored, []models.EngineEvent{{Kind: models.EventRender}}
}
