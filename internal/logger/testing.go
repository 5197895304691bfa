// Package logger provides test helpers for structured logging.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewTestLogger creates a logger for tests.
// Output is discarded unless the TEST_DEBUG environment variable is set,
// in which case debug records go to stdout.
func NewTestLogger() *slog.Logger {
	if os.Getenv("TEST_DEBUG") == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return NewLoggerTo(os.Stdout, Config{Level: slog.LevelDebug, Format: "text"})
}
