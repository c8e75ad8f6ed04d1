package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  zapcore.DebugLevel,
	}
	for in, want := range tests {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_WritesToWriterAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WarnLevel, &buf)

	l.Infow("timer_started", "set", 1)
	l.Warnw("runlog_decode_failed", "key", "runLogs")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "timer_started") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "runlog_decode_failed") || !strings.Contains(out, "runLogs") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	l := New(InfoLevel, &bytes.Buffer{})
	if OrNop(l) != l {
		t.Fatal("OrNop should return the given logger")
	}
	OrNop(nil).Errorw("discarded")
}
