package repository

import (
	"errors"
	"testing"

	"runwalk_timer/internal/models"
)

func TestSettingsKV_Load(t *testing.T) {
	t.Parallel()

	defaults := models.DefaultSettings()

	tests := []struct {
		name string
		seed map[string]string
		want models.Settings
	}{
		{
			name: "empty store gives defaults",
			seed: nil,
			want: defaults,
		},
		{
			name: "stored values override",
			seed: map[string]string{"runSec": "90", "walkSec": "30", "setCount": "8", "warmupSec": "0", "finishSec": "120"},
			want: models.Settings{RunSeconds: 90, WalkSeconds: 30, Sets: 8, WarmupSeconds: 0, FinishSeconds: 120},
		},
		{
			name: "garbage falls back to default",
			seed: map[string]string{"runSec": "abc", "walkSec": "", "setCount": "NaN"},
			want: defaults,
		},
		{
			name: "out of range values are clamped",
			seed: map[string]string{"runSec": "0", "setCount": "-3", "finishSec": "-10"},
			want: models.Settings{RunSeconds: 1, WalkSeconds: 120, Sets: 1, WarmupSeconds: 30, FinishSeconds: 0},
		},
		{
			name: "huge values are capped instead of wrapping",
			seed: map[string]string{"runSec": "1e18", "setCount": "2e17", "warmupSec": "-1e18"},
			want: models.Settings{RunSeconds: models.MaxSeconds, WalkSeconds: 120, Sets: models.MaxSeconds, WarmupSeconds: 0, FinishSeconds: 60},
		},
		{
			name: "decimal strings are floored",
			seed: map[string]string{"walkSec": "45.9"},
			want: models.Settings{RunSeconds: 60, WalkSeconds: 45, Sets: 4, WarmupSeconds: 30, FinishSeconds: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewSettingsKV(newMemKV(tt.seed))
			got, err := repo.Load(ctx(t), defaults)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsKV_Load_StorageErrorReturnsDefaults(t *testing.T) {
	t.Parallel()

	kv := newMemKV(map[string]string{"runSec": "90"})
	kv.getErr = errors.New("io")

	got, err := NewSettingsKV(kv).Load(ctx(t), models.DefaultSettings())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != models.DefaultSettings() {
		t.Fatalf("expected defaults on error, got %+v", got)
	}
}

func TestSettingsKV_SaveWritesIntegerString(t *testing.T) {
	t.Parallel()

	kv := newMemKV(nil)
	repo := NewSettingsKV(kv)
	if err := repo.Save(ctx(t), models.FieldSets, 6); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if kv.data["setCount"] != "6" {
		t.Fatalf("stored %q, want %q", kv.data["setCount"], "6")
	}

	got, err := repo.Load(ctx(t), models.DefaultSettings())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Sets != 6 {
		t.Fatalf("Sets = %d, want 6", got.Sets)
	}
}
