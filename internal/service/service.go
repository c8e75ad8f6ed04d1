package service

import (
	"context"
	"errors"
	"time"

	"runwalk_timer/internal/engine"
	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/models"
	"runwalk_timer/internal/repository"
)

var (
	ErrInvalidDateKey      = errors.New("invalid date: want YYYY-MM-DD")
	ErrUnknownSettingField = errors.New("unknown setting field")
	ErrInvalidRange        = errors.New("invalid range: from must be <= to")
)

// Timer exposes the interval timer controls. Every call returns the
// snapshot after the change.
type Timer interface {
	Start(ctx context.Context) models.Snapshot
	Pause(ctx context.Context) models.Snapshot
	Reset(ctx context.Context) models.Snapshot
	Toggle(ctx context.Context) models.Snapshot
	Snapshot() models.Snapshot
}

// Settings exposes the workout settings.
type Settings interface {
	Current() models.Settings
	Update(ctx context.Context, field models.SettingField, raw string) (models.Settings, error)
}

// RunLog exposes the date-keyed run log and its aggregates.
type RunLog interface {
	Today() models.DateKey
	Get(ctx context.Context, date models.DateKey) (models.RunLogEntry, bool, error)
	Upsert(ctx context.Context, date models.DateKey, e models.RunLogEntry) (bool, error)
	Delete(ctx context.Context, date models.DateKey) error
	SumRange(ctx context.Context, r models.DateRange) (models.Totals, error)
	Summary(ctx context.Context, ref models.DateKey) (models.Summary, error)
	CalendarMonth(ctx context.Context, year int, month time.Month) (models.CalendarMonth, error)
}

// EventLog exposes the workout journal with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.WorkoutEvent, error)
}

// Sink receives display and audio requests from the timer.
type Sink interface {
	Render(snap models.Snapshot)
	Signal(sig models.Signal, tones []models.Tone)
}

// WakeLock is the keep-display-awake resource. Both calls are best-effort.
type WakeLock interface {
	Acquire() error
	Release() error
}

// Scheduler delivers ticks to fn until Stop is called or fn returns false.
type Scheduler interface {
	Start(fn func(now time.Time) bool)
	Stop()
}

type Service struct {
	Timer    Timer
	Settings Settings
	RunLog   RunLog
	EventLog EventLog

	timer *TimerService
}

// Deps are the host-provided collaborators. Nil fields get silent defaults,
// except Scheduler which defaults to a one-second ticker.
type Deps struct {
	Scheduler Scheduler
	Sink      Sink
	WakeLock  WakeLock
	Defaults  models.Settings
	Log       *logger.Logger
	Now       func() time.Time
}

// NewService loads the settings, restores the last saved timer as paused
// and wires the sub-services together.
func NewService(ctx context.Context, repos *repository.Repository, d Deps) *Service {
	log := logger.OrNop(d.Log)
	if d.Scheduler == nil {
		d.Scheduler = NewTickerScheduler(time.Second)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Defaults == (models.Settings{}) {
		d.Defaults = models.DefaultSettings()
	}

	settings := NewSettingsService(repos.Settings, repos.EventRepo, d.Defaults, log, d.Now)
	cur, err := settings.Load(ctx)
	if err != nil {
		log.Warnw("settings_load_failed", "error", err)
	}

	eng := engine.New(cur)
	rec, err := repos.StateRepo.Load(ctx)
	switch {
	case err != nil:
		log.Warnw("timer_state_load_failed", "error", err)
	case rec.ID != 0:
		eng = engine.Restore(cur, rec.State)
		log.Infow("timer_restored", "phase", rec.State.Phase, "set", rec.State.CurrentSet, "elapsed", rec.State.TotalElapsed)
	}

	timer := NewTimerService(eng, TimerDeps{
		Scheduler: d.Scheduler,
		Sink:      d.Sink,
		WakeLock:  d.WakeLock,
		States:    repos.StateRepo,
		Events:    repos.EventRepo,
		Log:       log,
		Now:       d.Now,
	})
	settings.timer = timer

	return &Service{
		Timer:    timer,
		Settings: settings,
		RunLog:   NewRunLogService(repos.RunLogs, log, d.Now),
		EventLog: NewEventLogService(repos.EventRepo),
		timer:    timer,
	}
}

// Shutdown stops tick delivery and saves the timer.
func (s *Service) Shutdown(ctx context.Context) {
	s.timer.Shutdown(ctx)
}
