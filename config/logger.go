package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog.Logger configured from the log settings.
// Production defaults to JSON output; otherwise a console writer is used.
// Level may be: debug, info, warn, error (default: info).
func NewLogger(cfg *Config) zerolog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *Config, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	format := cfg.Log.Format
	if format == "" {
		format = "console"
		if cfg.IsProduction() {
			format = "json"
		}
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("env", cfg.Environment).Logger()
}
