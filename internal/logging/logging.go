// Package logging configures structured logging (log/slog) for wordpath.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Setup builds a logger writing to w. format "json" selects the JSON
// handler; anything else selects the text handler.
func Setup(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// SetupDefault builds a logger with Setup and installs it as slog's default.
func SetupDefault(level, format string, w io.Writer) *slog.Logger {
	logger := Setup(level, format, w)
	slog.SetDefault(logger)
	return logger
}

// WithComponent tags l with a component attribute.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("component", component))
}

// ParseLevel converts a level name to slog.Level; unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
