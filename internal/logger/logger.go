// Package logger provides structured logging configuration for the application.
// It configures log/slog with JSON output and source location tracking by
// default, and a text format for reading CLI output locally.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup initializes the global slog logger writing to stdout.
func Setup(level slog.Level, format string) {
	SetupWriter(os.Stdout, level, format)
}

// SetupWriter initializes the global slog logger writing to w.
// Source location tracking helps identify exactly where log entries originated.
func SetupWriter(w io.Writer, level slog.Level, format string) {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string log level to slog.Level.
// Valid values: "debug", "info", "warn", "error".
// Unrecognized values default to info level.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
