package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ConsoleTimeFormat is the compact time format for console output.
const ConsoleTimeFormat = "15:04:05"

// FileConfig configures a logger with an additional rotating file target.
// The file always receives JSON lines; Format only affects the console stream.
type FileConfig struct {
	Config
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func (c FileConfig) withDefaults() FileConfig {
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 10
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 3
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 7
	}
	return c
}

// NewWithFile creates a logger writing to stderr and a rotating log file in
// cfg.Dir. The returned cleanup closes the file; call it on shutdown.
func NewWithFile(cfg FileConfig) (zerolog.Logger, func(), error) {
	cfg = cfg.withDefaults()

	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("create log directory: %w", err)
	}

	rotator, err := NewLogRotator(cfg.Dir, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays, cfg.Compress)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}

	var console io.Writer = os.Stderr
	if cfg.Format == "console" {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() { _ = rotator.Close() }
	return logger, cleanup, nil
}
