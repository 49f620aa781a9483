package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New creates the process logger. Level strings follow zerolog's names;
// anything unparseable falls back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
