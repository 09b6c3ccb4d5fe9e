// Package logger builds the diagnostic logger used by every stage.
// Operator-facing messages are written separately; this logger carries
// request parameters, URLs, counts and per-article skips.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a text logger writing to w. With debug set the level is
// Debug; otherwise Info.
func New(w io.Writer, debug bool) *slog.Logger {
	level := "info"
	if debug {
		level = "debug"
	}
	return NewWithLevel(w, level)
}

// NewWithLevel returns a text logger at the named level (debug, info, warn,
// error). Unknown names fall back to info.
func NewWithLevel(w io.Writer, level string) *slog.Logger {
	lvl := new(slog.LevelVar)

	switch strings.ToLower(level) {
	case "debug":
		lvl.Set(slog.LevelDebug)
	case "warn":
		lvl.Set(slog.LevelWarn)
	case "error":
		lvl.Set(slog.LevelError)
	default:
		lvl.Set(slog.LevelInfo)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
