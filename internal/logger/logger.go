package logger

import (
	"io"
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton logger configured with the provided level.
// The first call initializes the logger; subsequent calls ignore the level
// and return the already initialized instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, nil)
	})
	return globalLogger
}

// New builds a standalone logger writing to w. The terminal host uses it
// to keep log lines off the screen it draws on.
func New(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}

// OrNop returns l, or a logger that discards everything when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return nop
	}
	return l
}
