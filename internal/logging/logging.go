// Package logging builds the slog loggers used by the creational commands.
//
// Logs are structured and written to stderr. The level comes from an explicit
// argument or, when that is empty, from the LOG_LEVEL environment variable.
// Debug level adds source locations.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel names the environment variable read when no level is given.
const EnvLogLevel = "LOG_LEVEL"

// ParseLogLevel converts a case-insensitive level name to a slog.Level.
// Unrecognized names map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewStructuredLogger returns a JSON logger tagged with module and version.
func NewStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	lvl := ParseLogLevel(level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})

	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a stderr logger as the slog default and returns it.
func SetDefaultStructuredLogger(module, version, level string) *slog.Logger {
	logger := NewStructuredLogger(os.Stderr, module, version, level)
	slog.SetDefault(logger)
	return logger
}
