// Package logging builds the charmbracelet loggers used across numberpop.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to w at the given level
// ("debug", "info", "warn", "error", "fatal").
func New(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
