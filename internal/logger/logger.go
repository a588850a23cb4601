// Package logger builds the charmbracelet console logger used by the CLI.
// Everything goes to the given writer (stderr in practice) so stdout carries
// only answers.
package logger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger at the named level ("debug", "info", "warn", "error").
// Timestamps are reported only at debug level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: lvl == log.DebugLevel,
		Level:           lvl,
		Prefix:          "evenflow",
	}), nil
}
