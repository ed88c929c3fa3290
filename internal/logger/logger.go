// Package logger builds the zerolog logger of the kyber768 command.
// Secret material is never passed to it.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = time.RFC3339

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// Config selects the output and minimum level.
type Config struct {
	// MinLevel is parsed with zerolog.ParseLevel. An unknown value falls
	// back to info and is reported once through the new logger.
	MinLevel string
	// NoColor disables ANSI colors, e.g. when output is not a terminal.
	NoColor bool
}

// New returns a console logger writing to out.
func New(out io.Writer, cfg Config) *zerolog.Logger {
	level, levelErr := zerolog.ParseLevel(cfg.MinLevel)
	if levelErr != nil || cfg.MinLevel == "" {
		level = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: consoleTimeFormat,
	}
	log := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if levelErr != nil {
		log.Error().Msgf("Failed to parse log level %q, using %q instead", cfg.MinLevel, level)
	}
	return &log
}

// Nop returns a logger that discards everything.
func Nop() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}
