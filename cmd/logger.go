package cmd

import (
	"io"
	"time"

	"github.com/etnz/analyzer/config"
	"github.com/rs/zerolog"
)

// NewLogger creates the logger described by the logging configuration.
// Unknown levels fall back to warn.
func NewLogger(c config.LoggingConfig, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		lvl = zerolog.WarnLevel
	}

	if c.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
