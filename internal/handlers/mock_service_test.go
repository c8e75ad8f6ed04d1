package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"runwalk_timer/internal/models"
	"runwalk_timer/internal/notify"
	"runwalk_timer/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTimer struct {
	snap  models.Snapshot
	calls []string
}

func (m *mockTimer) record(op string, running bool) models.Snapshot {
	m.calls = append(m.calls, op)
	m.snap.IsRunning = running
	return m.snap
}

func (m *mockTimer) Start(context.Context) models.Snapshot { return m.record("start", true) }
func (m *mockTimer) Pause(context.Context) models.Snapshot { return m.record("pause", false) }
func (m *mockTimer) Reset(context.Context) models.Snapshot { return m.record("reset", false) }
func (m *mockTimer) Toggle(context.Context) models.Snapshot {
	return m.record("toggle", !m.snap.IsRunning)
}
func (m *mockTimer) Snapshot() models.Snapshot { return m.snap }

type mockSettings struct {
	current   models.Settings
	err       error
	lastField models.SettingField
	lastRaw   string
}

func (m *mockSettings) Current() models.Settings { return m.current }
func (m *mockSettings) Update(_ context.Context, f models.SettingField, raw string) (models.Settings, error) {
	m.lastField, m.lastRaw = f, raw
	return m.current, m.err
}

type mockRunLog struct {
	entries map[models.DateKey]models.RunLogEntry
	err     error

	lastUpsert  models.RunLogEntry
	lastSumRef  models.DateKey
	lastCalYear int
	lastCalMon  time.Month
}

func (m *mockRunLog) Today() models.DateKey { return models.NewDateKey(2024, time.January, 3) }

func (m *mockRunLog) Get(_ context.Context, d models.DateKey) (models.RunLogEntry, bool, error) {
	e, ok := m.entries[d]
	return e, ok, m.err
}

func (m *mockRunLog) Upsert(_ context.Context, d models.DateKey, e models.RunLogEntry) (bool, error) {
	m.lastUpsert = e
	if m.err != nil {
		return false, m.err
	}
	if m.entries == nil {
		m.entries = map[models.DateKey]models.RunLogEntry{}
	}
	if e.IsEmpty() {
		delete(m.entries, d)
		return false, nil
	}
	m.entries[d] = e
	return true, nil
}

func (m *mockRunLog) Delete(_ context.Context, d models.DateKey) error {
	delete(m.entries, d)
	return m.err
}

func (m *mockRunLog) SumRange(context.Context, models.DateRange) (models.Totals, error) {
	return models.Totals{}, m.err
}

func (m *mockRunLog) Summary(_ context.Context, ref models.DateKey) (models.Summary, error) {
	m.lastSumRef = ref
	return models.Summary{Date: ref, Week: models.RangeSummary{Text: "Week: 00:00 · 0.00 km"}}, m.err
}

func (m *mockRunLog) CalendarMonth(_ context.Context, year int, month time.Month) (models.CalendarMonth, error) {
	m.lastCalYear, m.lastCalMon = year, month
	return models.CalendarMonth{Year: year, Month: int(month)}, m.err
}

type mockEventLog struct {
	resp     []models.WorkoutEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]models.WorkoutEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, hub *notify.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, hub, nil)
	return h.InitRoutes()
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}
