package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"runwalk_timer/internal/logger"
	"runwalk_timer/internal/models"
	"runwalk_timer/internal/repository"

	"github.com/google/uuid"
)

// settingsApplier receives settings changes; implemented by TimerService.
type settingsApplier interface {
	ApplySetting(ctx context.Context, field models.SettingField, value int) models.Snapshot
}

type SettingsService struct {
	mu       sync.Mutex
	repo     repository.SettingsRepo
	events   repository.EventRepo
	timer    settingsApplier
	defaults models.Settings
	current  models.Settings
	log      *logger.Logger
	now      func() time.Time
}

var _ Settings = (*SettingsService)(nil)

// NewSettingsService builds the service; a nil now means time.Now.
func NewSettingsService(repo repository.SettingsRepo, events repository.EventRepo, defaults models.Settings, log *logger.Logger, now func() time.Time) *SettingsService {
	if now == nil {
		now = time.Now
	}
	d := defaults.Normalize()
	return &SettingsService{
		repo:     repo,
		events:   events,
		defaults: d,
		current:  d,
		log:      logger.OrNop(log),
		now:      now,
	}
}

// Load reads the stored settings. On a storage error the defaults are kept
// and the error is returned for logging.
func (s *SettingsService) Load(ctx context.Context) (models.Settings, error) {
	st, err := s.repo.Load(ctx, s.defaults)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.current = s.defaults
		return s.current, fmt.Errorf("load settings: %w", err)
	}
	s.current = st
	return st, nil
}

func (s *SettingsService) Current() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update clamps raw into a value for field, stores it and hands it to the
// timer. Bad numbers are clamped, never rejected; only an unknown field
// is an error.
func (s *SettingsService) Update(ctx context.Context, field models.SettingField, raw string) (models.Settings, error) {
	if !field.Valid() {
		return s.Current(), fmt.Errorf("%w: %q", ErrUnknownSettingField, field)
	}
	v := ParseSettingValue(field, raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current.Get(field)
	if err := s.repo.Save(ctx, field, v); err != nil {
		return s.current, fmt.Errorf("save setting %s: %w", field, err)
	}
	s.current = s.current.With(field, v)

	if s.timer != nil {
		s.timer.ApplySetting(ctx, field, v)
	}
	if s.events != nil && prev != v {
		err := s.events.Append(ctx, models.WorkoutEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  s.now().UTC(),
			Type:        models.WorkoutSettingsChange,
			Description: fmt.Sprintf("%s changed to %d", field, v),
			Metadata:    map[string]any{"field": string(field), "from": prev, "to": v},
		})
		if err != nil {
			s.log.Errorw("workout_event_append_failed", "type", models.WorkoutSettingsChange, "error", err)
		}
	}
	s.log.Infow("setting_updated", "field", field, "value", v)
	return s.current, nil
}

// ParseSettingValue turns form input into a stored value: non-numeric
// input gives the field minimum, fractions are floored and the result is
// clamped to the minimum.
func ParseSettingValue(field models.SettingField, raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return field.Min()
	}
	return field.Clamp(models.FloorInt(f))
}
