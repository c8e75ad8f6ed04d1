package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"runwalk_timer/internal/engine"
	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/models"
	"runwalk_timer/internal/repository"

	"github.com/google/uuid"
)

// persistTimeout bounds storage calls made from the tick goroutine.
const persistTimeout = 2 * time.Second

type TimerDeps struct {
	Scheduler Scheduler
	Sink      Sink
	WakeLock  WakeLock
	States    repository.StateRepo
	Events    repository.EventRepo
	Log       *logger.Logger
	Now       func() time.Time
}

// TimerService hosts the interval engine: it feeds it ticks, dispatches
// the events it returns and persists every change.
//
// ctl serializes control calls so scheduler start/stop cannot interleave.
// mu guards the engine and is shared with the tick callback. saveMu orders
// state writes and is always taken before mu.
type TimerService struct {
	ctl    sync.Mutex
	mu     sync.Mutex
	saveMu sync.Mutex
	eng    *engine.Engine

	sched  Scheduler
	sink   Sink
	wake   *WakeGuard
	states repository.StateRepo
	events repository.EventRepo
	log    *logger.Logger
	now    func() time.Time
}

var _ Timer = (*TimerService)(nil)

func NewTimerService(eng *engine.Engine, d TimerDeps) *TimerService {
	s := &TimerService{
		eng:    eng,
		sched:  d.Scheduler,
		sink:   d.Sink,
		states: d.States,
		events: d.Events,
		log:    logger.OrNop(d.Log),
		now:    d.Now,
	}
	if s.sched == nil {
		s.sched = NewTickerScheduler(time.Second)
	}
	if s.sink == nil {
		s.sink = nopSink{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.wake = NewWakeGuard(d.WakeLock, s.log)
	return s
}

// Snapshot returns the current display state.
func (s *TimerService) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Start begins or resumes the countdown. It is a no-op while running.
func (s *TimerService) Start(ctx context.Context) models.Snapshot {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	return s.start(ctx)
}

// Pause halts tick delivery and keeps the countdown where it is.
func (s *TimerService) Pause(ctx context.Context) models.Snapshot {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	return s.pause(ctx)
}

// Reset stops the timer and returns it to the warmup of set 1.
func (s *TimerService) Reset(ctx context.Context) models.Snapshot {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	evs := s.eng.Reset()
	s.dispatch(evs)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Stop()
	s.persist(ctx, snap, models.WorkoutReset, "Timer reset", nil)
	s.log.Infow("timer_reset")
	return snap
}

// Toggle starts a paused timer and pauses a running one.
func (s *TimerService) Toggle(ctx context.Context) models.Snapshot {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.mu.Lock()
	running := s.eng.Running()
	s.mu.Unlock()

	if running {
		return s.pause(ctx)
	}
	return s.start(ctx)
}

// ApplySetting forwards a settings change to the engine.
func (s *TimerService) ApplySetting(ctx context.Context, field models.SettingField, value int) models.Snapshot {
	s.mu.Lock()
	_, evs := s.eng.ApplySetting(field, value)
	s.dispatch(evs)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if len(evs) > 0 {
		s.saveState(ctx)
	}
	return snap
}

// Shutdown stops tick delivery and saves the current state. A running
// timer is restored paused on the next start.
func (s *TimerService) Shutdown(ctx context.Context) {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.sched.Stop()
	s.wake.Release()
	s.saveState(ctx)
}

func (s *TimerService) start(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	if s.eng.Running() {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	evs := s.eng.Start()
	s.dispatch(evs)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Start(s.onTick)
	s.persist(ctx, snap, models.WorkoutStart, "Timer started", map[string]any{
		"phase": snap.Phase,
		"set":   snap.CurrentSet,
	})
	s.log.Infow("timer_started", "phase", snap.Phase, "set", snap.CurrentSet, "remaining", snap.SecondsRemaining)
	return snap
}

func (s *TimerService) pause(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	evs := s.eng.Pause()
	s.dispatch(evs)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.sched.Stop()
	s.persist(ctx, snap, models.WorkoutPause, "Timer paused", map[string]any{
		"phase":     snap.Phase,
		"remaining": snap.SecondsRemaining,
	})
	s.log.Infow("timer_paused", "phase", snap.Phase, "remaining", snap.SecondsRemaining)
	return snap
}

// onTick is the scheduler callback. Returning false ends tick delivery.
// Storage is written after mu is released so readers never wait on it.
func (s *TimerService) onTick(now time.Time) bool {
	s.mu.Lock()
	if !s.eng.Running() {
		s.mu.Unlock()
		return false
	}
	evs := s.eng.Tick()
	s.dispatch(evs)
	snap := s.snapshotLocked()
	running := s.eng.Running()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	s.journalTick(ctx, evs, snap)
	s.saveState(ctx)
	return running
}

// dispatch hands engine events to the host collaborators. Callers hold mu.
func (s *TimerService) dispatch(evs []models.EngineEvent) {
	for _, ev := range evs {
		switch ev.Kind {
		case models.EventRender:
			s.sink.Render(s.snapshotLocked())
		case models.EventSignal:
			s.sink.Signal(ev.Signal, ev.Signal.Tones())
		case models.EventWakeAcquire:
			s.wake.Acquire()
		case models.EventWakeRelease:
			s.wake.Release()
		case models.EventPhaseChange, models.EventStopped:
			// journaled by the caller; the tick loop ends on !Running
		}
	}
}

func (s *TimerService) journalTick(ctx context.Context, evs []models.EngineEvent, snap models.Snapshot) {
	for _, ev := range evs {
		switch ev.Kind {
		case models.EventPhaseChange:
			s.appendEvent(ctx, models.WorkoutPhaseChange,
				fmt.Sprintf("%s -> %s", ev.From, ev.To),
				map[string]any{"from": ev.From, "to": ev.To, "set": snap.CurrentSet, "elapsed": snap.TotalElapsed})
			s.log.Debugw("phase_changed", "from", ev.From, "to", ev.To, "set", snap.CurrentSet)
		case models.EventStopped:
			s.appendEvent(ctx, models.WorkoutFinish, "Workout finished",
				map[string]any{"elapsed": snap.TotalElapsed, "sets": snap.Sets})
			s.log.Infow("workout_finished", "elapsed", snap.TotalElapsed, "sets", snap.Sets)
		}
	}
}

func (s *TimerService) persist(ctx context.Context, snap models.Snapshot, typ, desc string, meta map[string]any) {
	s.saveState(ctx)
	s.appendEvent(ctx, typ, desc, meta)
}

// saveState and appendEvent log failures instead of returning them: the
// in-memory engine stays authoritative and the next change saves again.
//
// saveState reads the engine under saveMu, so a slow write from an older
// tick can never land after a newer one. Callers must not hold mu.
func (s *TimerService) saveState(ctx context.Context) {
	if s.states == nil {
		return
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	rec := models.TimerRecord{ID: 1, State: snap.TimerState, UpdatedAt: snap.UpdatedAt}
	if err := s.states.Save(ctx, rec); err != nil {
		s.log.Errorw("timer_state_save_failed", "error", err)
	}
}

func (s *TimerService) appendEvent(ctx context.Context, typ, desc string, meta map[string]any) {
	if s.events == nil {
		return
	}
	ev := models.WorkoutEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  s.now().UTC(),
		Type:        typ,
		Description: desc,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	if err := s.events.Append(ctx, ev); err != nil {
		s.log.Errorw("workout_event_append_failed", "type", typ, "error", err)
	}
}

func (s *TimerService) snapshotLocked() models.Snapshot {
	return models.NewSnapshot(s.eng.State(), s.eng.Settings().Sets, s.now().UTC())
}

type nopSink struct{}

func (nopSink) Render(models.Snapshot)              {}
func (nopSink) Signal(models.Signal, []models.Tone) {}
