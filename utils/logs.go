package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide console logger.
func NewLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// RankLogger tags a logger with the calling rank so interleaved output
// from concurrent ranks stays attributable.
func RankLogger(base zerolog.Logger, component string, rank int) zerolog.Logger {
	return base.With().Str("component", component).Int("rank", rank).Logger()
}
