// Package output provides the terminal logger and styles used by mkcomponent.
package output

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// LogConfig controls how the ui logger renders
type LogConfig struct {
	// Verbose enables debug level logs, and reports timestamps
	Verbose bool

	// NoColor disables ANSI styling
	NoColor bool
}

// NewLogger returns the charm logger backing the ui
func NewLogger(w io.Writer, cfg LogConfig) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	if cfg.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}

	return logger
}

// NewUI wraps the charm logger in a slog.Logger, which is what the rest of mkcomponent logs through.
func NewUI(w io.Writer, cfg LogConfig) *slog.Logger {
	return slog.New(NewLogger(w, cfg))
}
