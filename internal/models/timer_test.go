package models

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		5:    "00:05",
		65:   "01:05",
		600:  "10:00",
		5400: "90:00",
		-3:   "00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestSignalTones(t *testing.T) {
	tones := SignalShortShort.Tones()
	if len(tones) != 2 {
		t.Fatalf("short-short should be two beeps, got %d", len(tones))
	}
	if tones[1].Delay != 200*time.Millisecond || tones[0].Delay != 0 {
		t.Fatalf("unexpected delays %+v", tones)
	}
	if SignalLong.Tones()[0].FrequencyHz != 1000 {
		t.Fatalf("long beep frequency changed")
	}
	if Signal("none").Tones() != nil {
		t.Fatalf("unknown signal should have no tones")
	}
}

func TestRunLogEntry_IsEmpty(t *testing.T) {
	zero, five := 0.0, 5.0
	cases := []struct {
		e    RunLogEntry
		want bool
	}{
		{RunLogEntry{}, true},
		{RunLogEntry{DistanceKm: &zero}, true},
		{RunLogEntry{TimeSeconds: 60}, false},
		{RunLogEntry{DistanceKm: &five}, false},
		{RunLogEntry{Gym: true}, false},
	}
	for i, tc := range cases {
		if got := tc.e.IsEmpty(); got != tc.want {
			t.Fatalf("case %d: IsEmpty=%v, want %v", i, got, tc.want)
		}
	}
}

func TestFloorInt_CapsInsteadOfWrapping(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{12.9, 12},
		{-0.5, -1},
		{1e18, MaxSeconds},
		{2e17, MaxSeconds},
		{-1e18, -MaxSeconds},
	}
	for _, tt := range tests {
		if got := FloorInt(tt.in); got != tt.want {
			t.Errorf("FloorInt(%g) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
