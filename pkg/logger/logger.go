package logger

import (
	"io"
	"os"
	"time"

	"github.com/pathfinder/pkg/config"
	"github.com/rs/zerolog"
)

// New returns the process logger. Pretty output is meant for local runs only.
func New(cfg config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop is used by tests and by components built without a logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
