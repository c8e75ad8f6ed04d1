package service

import (
	"context"
	"errors"
	"testing"

	"runwalk_timer/internal/models"
	"runwalk_timer/internal/repository"
)

func newTestRepos(states *fakeStateRepo, settings *fakeSettingsRepo) *repository.Repository {
	return &repository.Repository{
		Settings:  settings,
		RunLogs:   &fakeRunLogRepo{},
		StateRepo: states,
		EventRepo: &fakeEventRepo{},
	}
}

func TestNewService_RestoresSavedTimerPaused(t *testing.T) {
	states := &fakeStateRepo{loadRec: models.TimerRecord{
		ID: 1,
		State: models.TimerState{
			Phase: models.PhaseWalk, SecondsRemaining: 40, TotalElapsed: 500, CurrentSet: 3, IsRunning: true,
		},
	}}
	settings := &fakeSettingsRepo{stored: map[models.SettingField]int{models.FieldSets: 5}}

	svc := NewService(context.Background(), newTestRepos(states, settings), Deps{Scheduler: &manualScheduler{}})

	snap := svc.Timer.Snapshot()
	want := models.TimerState{Phase: models.PhaseWalk, SecondsRemaining: 40, TotalElapsed: 500, CurrentSet: 3}
	if snap.TimerState != want {
		t.Fatalf("restored = %+v, want %+v", snap.TimerState, want)
	}
	if snap.Sets != 5 || svc.Settings.Current().Sets != 5 {
		t.Fatalf("stored settings not loaded: %+v", svc.Settings.Current())
	}
}

func TestNewService_FreshStart(t *testing.T) {
	svc := NewService(context.Background(), newTestRepos(&fakeStateRepo{}, &fakeSettingsRepo{}), Deps{
		Scheduler: &manualScheduler{},
		Defaults:  models.Settings{RunSeconds: 30, WalkSeconds: 30, Sets: 2, WarmupSeconds: 10, FinishSeconds: 5},
	})

	snap := svc.Timer.Snapshot()
	if snap.Phase != models.PhaseWarmup || snap.SecondsRemaining != 10 || snap.CurrentSet != 1 || snap.IsRunning {
		t.Fatalf("fresh snapshot = %+v", snap)
	}
}

func TestNewService_LoadErrorsFallBack(t *testing.T) {
	states := &fakeStateRepo{loadErr: errors.New("io")}
	settings := &fakeSettingsRepo{loadErr: errors.New("io")}

	svc := NewService(context.Background(), newTestRepos(states, settings), Deps{Scheduler: &manualScheduler{}})

	if got := svc.Settings.Current(); got != models.DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", got)
	}
	if snap := svc.Timer.Snapshot(); snap.SecondsRemaining != models.DefaultSettings().WarmupSeconds {
		t.Fatalf("timer should start fresh, got %+v", snap)
	}
}

func TestNewService_SettingsReachTimer(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, newTestRepos(&fakeStateRepo{}, &fakeSettingsRepo{}), Deps{Scheduler: &manualScheduler{}})

	if _, err := svc.Settings.Update(ctx, models.FieldWarmupSec, "7"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if snap := svc.Timer.Snapshot(); snap.SecondsRemaining != 7 {
		t.Fatalf("timer countdown = %d, want 7", snap.SecondsRemaining)
	}
	svc.Shutdown(ctx)
}
