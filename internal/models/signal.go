package models

import "time"

// Signal is an audio cue requested by a phase transition.
type Signal string

const (
	SignalShort      Signal = "short"
	SignalShortShort Signal = "short-short"
	SignalMedium     Signal = "medium"
	SignalLong       Signal = "long"
)

// Tone is one beep: an oscillator frequency held for Duration, started
// Delay after the signal was requested.
type Tone struct {
	FrequencyHz int           `json:"frequency_hz"`
	Duration    time.Duration `json:"duration"`
	Delay       time.Duration `json:"delay"`
}

const shortShortGap = 200 * time.Millisecond

// Tones returns the beeps that make up the signal.
func (s Signal) Tones() []Tone {
	short := Tone{FrequencyHz: 800, Duration: 150 * time.Millisecond}
	switch s {
	case SignalShort:
		return []Tone{short}
	case SignalShortShort:
		second := short
		second.Delay = shortShortGap
		return []Tone{short, second}
	case SignalMedium:
		return []Tone{{FrequencyHz: 400, Duration: 300 * time.Millisecond}}
	case SignalLong:
		return []Tone{{FrequencyHz: 1000, Duration: 500 * time.Millisecond}}
	}
	return nil
}
