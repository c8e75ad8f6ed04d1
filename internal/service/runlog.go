package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/models"
	"runwalk_timer/internal/repository"
)

// RunLogService is the date-keyed run log. Every mutation reads and
// rewrites the whole stored document.
type RunLogService struct {
	mu   sync.Mutex
	repo repository.RunLogRepo
	log  *logger.Logger
	now  func() time.Time
}

var _ RunLog = (*RunLogService)(nil)

func NewRunLogService(repo repository.RunLogRepo, log *logger.Logger, now func() time.Time) *RunLogService {
	if now == nil {
		now = time.Now
	}
	return &RunLogService{repo: repo, log: logger.OrNop(log), now: now}
}

// Today is the local calendar date, the default reference date.
func (s *RunLogService) Today() models.DateKey {
	return models.DateKeyOf(s.now())
}

func (s *RunLogService) Get(ctx context.Context, date models.DateKey) (models.RunLogEntry, bool, error) {
	if date.IsZero() {
		return models.RunLogEntry{}, false, ErrInvalidDateKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.load(ctx)
	if err != nil {
		return models.RunLogEntry{}, false, err
	}
	e, ok := logs[date]
	return e, ok, nil
}

// Upsert replaces the entry for date. An entry with no time, no positive
// distance and no gym flag deletes the date instead; the result reports
// whether an entry is stored afterwards.
func (s *RunLogService) Upsert(ctx context.Context, date models.DateKey, e models.RunLogEntry) (bool, error) {
	if date.IsZero() {
		return false, ErrInvalidDateKey
	}
	e = normalizeEntry(e)

	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	stored := !e.IsEmpty()
	if stored {
		logs[date] = e
	} else {
		delete(logs, date)
	}
	if err := s.repo.Save(ctx, logs); err != nil {
		s.log.Errorw("runlog_save_failed", "date", date, "error", err)
		return false, fmt.Errorf("save run logs: %w", err)
	}
	s.log.Debugw("runlog_upserted", "date", date, "stored", stored)
	return stored, nil
}

// Delete removes the entry for date; a missing entry is not an error.
func (s *RunLogService) Delete(ctx context.Context, date models.DateKey) error {
	if date.IsZero() {
		return ErrInvalidDateKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := logs[date]; !ok {
		return nil
	}
	delete(logs, date)
	if err := s.repo.Save(ctx, logs); err != nil {
		s.log.Errorw("runlog_save_failed", "date", date, "error", err)
		return fmt.Errorf("save run logs: %w", err)
	}
	return nil
}

// SumRange totals every entry whose date lies in r, bounds included.
func (s *RunLogService) SumRange(ctx context.Context, r models.DateRange) (models.Totals, error) {
	if r.Start.IsZero() || r.End.IsZero() {
		return models.Totals{}, ErrInvalidDateKey
	}
	if r.End.Before(r.Start) {
		return models.Totals{}, ErrInvalidRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.load(ctx)
	if err != nil {
		return models.Totals{}, err
	}
	return sumRange(logs, r), nil
}

// WeekRange is the Sunday-start week containing ref.
func (s *RunLogService) WeekRange(ref models.DateKey) models.DateRange { return models.WeekOf(ref) }

// MonthRange is the calendar month containing ref.
func (s *RunLogService) MonthRange(ref models.DateKey) models.DateRange { return models.MonthOf(ref) }

// Summary returns week and month totals around ref, today when ref is zero.
func (s *RunLogService) Summary(ctx context.Context, ref models.DateKey) (models.Summary, error) {
	if ref.IsZero() {
		ref = s.Today()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.load(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	return summarize(logs, ref), nil
}

// CalendarMonth builds the Sunday-start grid for a month. Cells outside the
// month are present for layout but carry no entry.
func (s *RunLogService) CalendarMonth(ctx context.Context, year int, month time.Month) (models.CalendarMonth, error) {
	if year < 1 || year > models.MaxYear || month < time.January || month > time.December {
		return models.CalendarMonth{}, ErrInvalidDateKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.load(ctx)
	if err != nil {
		return models.CalendarMonth{}, err
	}
	cal := buildCalendar(logs, year, month)
	// trailing cells of December 9999 fall past the last representable date
	if n := len(cal.Days); n > 0 && cal.Days[n-1].Date.Year() > models.MaxYear {
		return models.CalendarMonth{}, ErrInvalidDateKey
	}
	return cal, nil
}

// load reads the document. A corrupt document is logged and read as empty.
func (s *RunLogService) load(ctx context.Context) (map[models.DateKey]models.RunLogEntry, error) {
	logs, err := s.repo.Load(ctx)
	if errors.Is(err, repository.ErrCorruptDocument) {
		s.log.Warnw("runlog_decode_failed", "error", err)
		return map[models.DateKey]models.RunLogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load run logs: %w", err)
	}
	if logs == nil {
		logs = map[models.DateKey]models.RunLogEntry{}
	}
	return logs, nil
}

func normalizeEntry(e models.RunLogEntry) models.RunLogEntry {
	if e.TimeSeconds < 0 {
		e.TimeSeconds = 0
	}
	if d := e.DistanceKm; d != nil && (*d < 0 || math.IsNaN(*d) || math.IsInf(*d, 0)) {
		e.DistanceKm = nil
	}
	return e
}

func sumRange(logs map[models.DateKey]models.RunLogEntry, r models.DateRange) models.Totals {
	var t models.Totals
	for k, e := range logs {
		if r.Contains(k) {
			t = t.Add(e)
		}
	}
	return t
}

func summarize(logs map[models.DateKey]models.RunLogEntry, ref models.DateKey) models.Summary {
	week, month := models.WeekOf(ref), models.MonthOf(ref)
	wt, mt := sumRange(logs, week), sumRange(logs, month)
	return models.Summary{
		Date:  ref,
		Week:  models.RangeSummary{Range: week, Totals: wt, Text: TotalsText("Week", wt)},
		Month: models.RangeSummary{Range: month, Totals: mt, Text: TotalsText("Month", mt)},
	}
}

func buildCalendar(logs map[models.DateKey]models.RunLogEntry, year int, month time.Month) models.CalendarMonth {
	first := models.NewDateKey(year, month, 1)
	span := models.MonthOf(first)
	lead := int(first.Weekday())
	cells := (lead + span.Days() + 6) / 7 * 7
	start := first.AddDays(-lead)

	cal := models.CalendarMonth{
		Year:   year,
		Month:  int(month),
		Title:  fmt.Sprintf("%s %d", month, year),
		Days:   make([]models.CalendarDay, 0, cells),
		Totals: sumRange(logs, span),
	}
	for i := 0; i < cells; i++ {
		d := start.AddDays(i)
		day := models.CalendarDay{Date: d, Day: d.Day(), InMonth: span.Contains(d)}
		if e, ok := logs[d]; ok && day.InMonth {
			e := e
			day.Entry = &e
			day.GymBadge = e.Gym
			day.DistanceLabel = DistanceLabel(e.Distance())
			day.MinutesLabel = MinutesLabel(e.TimeSeconds)
		}
		cal.Days = append(cal.Days, day)
	}
	return cal
}
