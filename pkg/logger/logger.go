// Package logger provides the process-wide slog setup and the shared
// attribute helpers used across services and handlers.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the application logger. The level comes from LOG_LEVEL
// (debug, info, warn/warning, error; anything else means info). When
// GO_ENV=production the handler emits JSON, otherwise human-readable text.
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Scope tags a log record with the subsystem it came from.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error attaches an error to a log record under the conventional "error" key.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
