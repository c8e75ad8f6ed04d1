package service

import (
	"context"
	"testing"

	"runwalk_timer/internal/engine"
	"runwalk_timer/internal/notify"
)

func TestTimerService_DisplayConnectingMidWorkoutIsKeptAwake(t *testing.T) {
	hub := notify.NewHub(8, nil)
	svc := NewTimerService(engine.New(shortWorkout()), TimerDeps{
		Scheduler: &manualScheduler{},
		Sink:      hub,
		WakeLock:  hub,
		States:    &fakeStateRepo{},
		Events:    &fakeEventRepo{},
		Now:       fixedNow,
	})
	ctx := context.Background()

	// no display connected yet
	svc.Start(ctx)
	if !svc.wake.Held() {
		t.Fatal("wake request should be held while running")
	}

	display, cancel := hub.Subscribe()
	defer cancel()
	var got []string
	for len(display) > 0 {
		m := <-display
		if m.Type == notify.TypeWake {
			got = append(got, m.Data.(notify.WakeData).Action)
		}
	}
	if len(got) != 1 || got[0] != notify.WakeAcquire {
		t.Fatalf("late display wake messages = %v, want [acquire]", got)
	}

	svc.Pause(ctx)
	var released bool
	for len(display) > 0 {
		if m := <-display; m.Type == notify.TypeWake && m.Data.(notify.WakeData).Action == notify.WakeRelease {
			released = true
		}
	}
	if !released || svc.wake.Held() {
		t.Fatal("pause should release the display")
	}
}
