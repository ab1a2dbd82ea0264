package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = logger.
		Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel)
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// VerbosityLevel maps a -v count onto a zerolog level.
func VerbosityLevel(v int) zerolog.Level {
	switch {
	case v <= 0:
		return zerolog.WarnLevel
	case v == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// SetVerbosity re-levels the package logger from a -v count.
func SetVerbosity(v int) {
	logger = logger.Level(VerbosityLevel(v))
}
