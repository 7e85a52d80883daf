// Package logging builds the structured loggers used across pointplan.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// EnvLogFile names a file the dashboard appends its log to.
const EnvLogFile = "POINTPLAN_LOG"

// New returns a text logger writing to w at Info level, or Debug when verbose.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ForTUI returns the dashboard logger. Output to the terminal would corrupt
// the alt screen, so it logs to the file named by POINTPLAN_LOG or nowhere.
// The returned close func is never nil.
func ForTUI(verbose bool) (*slog.Logger, func() error, error) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), func() error { return nil }, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, verbose), f.Close, nil
}
