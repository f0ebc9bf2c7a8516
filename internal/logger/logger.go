// Package logger holds the process-wide structured logger. Until SetLogger is
// called, records are discarded.
package logger

import (
	"io"
	"log/slog"
)

var log *slog.Logger

func init() {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func SetLogger(l *slog.Logger) {
	log = l
}

// New returns a text logger on w. Silent runs only log warnings and errors.
func New(w io.Writer, silent bool) *slog.Logger {
	level := slog.LevelInfo
	if silent {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}
