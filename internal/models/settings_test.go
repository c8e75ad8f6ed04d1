package models

import "testing"

func TestSettingField_ClampUsesFieldMinimum(t *testing.T) {
	cases := []struct {
		f    SettingField
		in   int
		want int
	}{
		{FieldRunSec, 0, 1},
		{FieldWalkSec, -5, 1},
		{FieldSets, 0, 1},
		{FieldWarmupSec, -1, 0},
		{FieldFinishSec, 0, 0},
		{FieldRunSec, 90, 90},
	}
	for _, tc := range cases {
		if got := tc.f.Clamp(tc.in); got != tc.want {
			t.Fatalf("%s.Clamp(%d) = %d, want %d", tc.f, tc.in, got, tc.want)
		}
	}
}

func TestSettings_WithAndPhaseDuration(t *testing.T) {
	s := DefaultSettings().With(FieldRunSec, 45).With(FieldFinishSec, -3)
	if s.RunSeconds != 45 || s.FinishSeconds != 0 {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.PhaseDuration(PhaseRun) != 45 || s.PhaseDuration(PhaseWalk) != 120 {
		t.Fatalf("PhaseDuration mismatch: %+v", s)
	}
	if got := (Settings{}).Normalize(); got.RunSeconds != 1 || got.Sets != 1 || got.WarmupSeconds != 0 {
		t.Fatalf("Normalize: %+v", got)
	}
}

func TestSettingField_Phase(t *testing.T) {
	if p, ok := FieldWalkSec.Phase(); !ok || p != PhaseWalk {
		t.Fatalf("walkSec should map to WALK")
	}
	if _, ok := FieldSets.Phase(); ok {
		t.Fatalf("setCount controls no phase")
	}
	if SettingField("bogus").Valid() {
		t.Fatalf("unknown field reported valid")
	}
}
