// Package logging wires zerolog through the application: context helpers,
// file output with rotation, GLib message routing, and crash reporting.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the level and the console rendering of a logger.
type Config struct {
	Level      zerolog.Level
	Format     string // "console" or "json"
	TimeFormat string
}

// DefaultConfig is info-level console output with RFC3339 timestamps.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

var levelNames = map[string]zerolog.Level{
	"trace": zerolog.TraceLevel,
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// ParseLevel maps a level name from config or environment to a zerolog
// level. Anything unrecognized means info.
func ParseLevel(name string) zerolog.Level {
	if lvl, ok := levelNames[name]; ok {
		return lvl
	}
	return zerolog.InfoLevel
}

// New builds a stderr logger from cfg.
func New(cfg Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}
	return zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
}

// NewFromConfigValues builds a logger from the raw level and format strings
// as they appear in the config file.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv builds a logger from DIMMER_LOG_LEVEL and DIMMER_LOG_FORMAT,
// falling back to the defaults for anything unset.
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DIMMER_LOG_LEVEL"), os.Getenv("DIMMER_LOG_FORMAT"))
}
