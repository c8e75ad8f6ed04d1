package service

import (
	"context"
	"errors"
	"testing"

	"runwalk_timer/internal/engine"
	"runwalk_timer/internal/models"
)

func TestParseSettingValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field models.SettingField
		raw   string
		want  int
	}{
		{models.FieldRunSec, "90", 90},
		{models.FieldRunSec, " 90 ", 90},
		{models.FieldRunSec, "abc", 1},
		{models.FieldRunSec, "", 1},
		{models.FieldRunSec, "-5", 1},
		{models.FieldRunSec, "0", 1},
		{models.FieldWalkSec, "45.9", 45},
		{models.FieldSets, "0", 1},
		{models.FieldSets, "3", 3},
		{models.FieldWarmupSec, "0", 0},
		{models.FieldWarmupSec, "-1", 0},
		{models.FieldWarmupSec, "x", 0},
		{models.FieldFinishSec, "NaN", 0},
		{models.FieldFinishSec, "1e12", 2147483647},
		{models.FieldSets, "2e17", 2147483647},
		{models.FieldRunSec, "-1e30", 1},
	}
	for _, tt := range tests {
		if got := ParseSettingValue(tt.field, tt.raw); got != tt.want {
			t.Errorf("ParseSettingValue(%s, %q) = %d, want %d", tt.field, tt.raw, got, tt.want)
		}
	}
}

func TestSettingsService_Load(t *testing.T) {
	repo := &fakeSettingsRepo{stored: map[models.SettingField]int{models.FieldRunSec: 90}}
	svc := NewSettingsService(repo, nil, models.DefaultSettings(), nil, nil)

	got, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.RunSeconds != 90 || got.WalkSeconds != 120 {
		t.Fatalf("Load() = %+v", got)
	}
	if svc.Current() != got {
		t.Fatalf("Current() should match loaded settings")
	}

	repo.loadErr = errors.New("io")
	got, err = svc.Load(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != models.DefaultSettings() {
		t.Fatalf("defaults expected on error, got %+v", got)
	}
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	repo := &fakeSettingsRepo{}
	events := &fakeEventRepo{}
	svc := NewSettingsService(repo, events, models.DefaultSettings(), nil, fixedNow)

	f := newTimerFixture(models.DefaultSettings())
	svc.timer = f.svc

	got, err := svc.Update(ctx, models.FieldWarmupSec, "12.7")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.WarmupSeconds != 12 || repo.stored[models.FieldWarmupSec] != 12 {
		t.Fatalf("warmup not stored: %+v / %+v", got, repo.stored)
	}
	if snap := f.svc.Snapshot(); snap.SecondsRemaining != 12 {
		t.Fatalf("paused WARMUP countdown should follow the new value, got %d", snap.SecondsRemaining)
	}
	if types := events.types(); len(types) != 1 || types[0] != models.WorkoutSettingsChange {
		t.Fatalf("journal = %v", types)
	}
	if at := events.appended[0].OccurredAt; !at.Equal(fixedNow()) {
		t.Fatalf("SETTINGS_CHANGE stamped %v, want injected clock %v", at, fixedNow())
	}

	// invalid input clamps to the minimum instead of failing
	got, err = svc.Update(ctx, models.FieldSets, "-2")
	if err != nil || got.Sets != 1 {
		t.Fatalf("sets = %d, err = %v; want 1, nil", got.Sets, err)
	}

	// unchanged value is not journaled again
	if _, err := svc.Update(ctx, models.FieldSets, "1"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n := len(events.types()); n != 2 {
		t.Fatalf("expected 2 journal entries, got %d", n)
	}
}

func TestSettingsService_Update_UnknownField(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, nil, models.DefaultSettings(), nil, nil)
	_, err := svc.Update(context.Background(), models.SettingField("tempo"), "5")
	if !errors.Is(err, ErrUnknownSettingField) {
		t.Fatalf("expected ErrUnknownSettingField, got %v", err)
	}
}

func TestSettingsService_Update_SaveErrorKeepsValue(t *testing.T) {
	repo := &fakeSettingsRepo{saveErr: errors.New("readonly")}
	svc := NewSettingsService(repo, nil, models.DefaultSettings(), nil, nil)
	svc.timer = NewTimerService(engine.New(models.DefaultSettings()), TimerDeps{Scheduler: &manualScheduler{}})

	got, err := svc.Update(context.Background(), models.FieldRunSec, "200")
	if err == nil {
		t.Fatalf("expected save error")
	}
	if got.RunSeconds != 60 {
		t.Fatalf("failed save must not change settings, got %d", got.RunSeconds)
	}
}
