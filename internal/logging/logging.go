// Package logging provides a preconfigured zerolog logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger initializes a structured logger writing to stdout with the given level,
// falling back to info on an unparsable level string.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
