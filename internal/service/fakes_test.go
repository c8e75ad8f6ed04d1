package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"runwalk_timer/internal/models"
)

// fakeEventRepo records appends and captures List arguments.
type fakeEventRepo struct {
	mu sync.Mutex

	appended  []models.WorkoutEvent
	appendErr error

	gotFrom time.Time
	gotTo   time.Time
	gotType string
	events  []models.WorkoutEvent
	err     error
	calls   int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.WorkoutEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.WorkoutEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.err
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

type fakeStateRepo struct {
	mu      sync.Mutex
	loadRec models.TimerRecord
	loadErr error
	saveErr error
	saved   []models.TimerRecord
	onSave  func()
}

func (f *fakeStateRepo) Save(_ context.Context, rec models.TimerRecord) error {
	if f.onSave != nil {
		f.onSave()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, rec)
	return f.saveErr
}

func (f *fakeStateRepo) Load(context.Context) (models.TimerRecord, error) {
	return f.loadRec, f.loadErr
}

func (f *fakeStateRepo) last() (models.TimerRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return models.TimerRecord{}, false
	}
	return f.saved[len(f.saved)-1], true
}

type fakeSettingsRepo struct {
	stored  map[models.SettingField]int
	loadErr error
	saveErr error
}

func (f *fakeSettingsRepo) Load(_ context.Context, defaults models.Settings) (models.Settings, error) {
	if f.loadErr != nil {
		return defaults, f.loadErr
	}
	out := defaults
	for k, v := range f.stored {
		out = out.With(k, v)
	}
	return out, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, field models.SettingField, value int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.stored == nil {
		f.stored = map[models.SettingField]int{}
	}
	f.stored[field] = value
	return nil
}

// fakeRunLogRepo keeps a copy of the last saved document.
type fakeRunLogRepo struct {
	logs    map[models.DateKey]models.RunLogEntry
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRunLogRepo) Load(context.Context) (map[models.DateKey]models.RunLogEntry, error) {
	out := map[models.DateKey]models.RunLogEntry{}
	for k, v := range f.logs {
		out[k] = v
	}
	return out, f.loadErr
}

func (f *fakeRunLogRepo) Save(_ context.Context, logs map[models.DateKey]models.RunLogEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.logs = map[models.DateKey]models.RunLogEntry{}
	for k, v := range logs {
		f.logs[k] = v
	}
	return nil
}

type recordingSink struct {
	mu      sync.Mutex
	renders []models.Snapshot
	signals []models.Signal
}

func (s *recordingSink) Render(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renders = append(s.renders, snap)
}

func (s *recordingSink) Signal(sig models.Signal, _ []models.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signals = append(s.signals, sig)
}

type fakeWakeLock struct {
	acquires, releases int
	acquireErr         error
}

func (w *fakeWakeLock) Acquire() error {
	w.acquires++
	return w.acquireErr
}

func (w *fakeWakeLock) Release() error {
	w.releases++
	return errors.New("release is best-effort")
}

// manualScheduler delivers ticks only when the test calls fire.
type manualScheduler struct {
	fn     func(time.Time) bool
	starts int
	stops  int
}

func (m *manualScheduler) Start(fn func(time.Time) bool) {
	m.starts++
	m.fn = fn
}

func (m *manualScheduler) Stop() {
	m.stops++
	m.fn = nil
}

func (m *manualScheduler) active() bool { return m.fn != nil }

// fire delivers n ticks, dropping them once the loop has ended.
func (m *manualScheduler) fire(n int) {
	for i := 0; i < n && m.fn != nil; i++ {
		if !m.fn(time.Now()) {
			m.fn = nil
		}
	}
}

func fixedNow() time.Time { return time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC) }

func dk(s string) models.DateKey {
	k, err := models.ParseDateKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func kmPtr(v float64) *float64 { return &v }
