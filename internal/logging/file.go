package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// FileConfig enables logging to a rotated file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	SessionID     string // Names the file session_<id>.log; empty means floatpane.log
	WriteToStderr bool
	MaxSizeMB     int
	MaxBackups    int
	MaxAge        time.Duration
	Compress      bool
}

// NewWithFile creates a logger that writes to a rotated log file and,
// optionally, stderr. The returned cleanup closes the file.
// When the file cannot be opened the logger falls back to stderr and the
// error is returned alongside it.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			cfg.Output = io.Discard
		}
		return New(cfg), noop, nil
	}

	name := ""
	if fileCfg.SessionID != "" {
		name = SessionFilename(fileCfg.SessionID)
	}
	rotator, err := NewLogRotator(RotatorOptions{
		Dir:        fileCfg.LogDir,
		Name:       name,
		MaxSizeMB:  fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAge,
		Compress:   fileCfg.Compress,
	})
	if err != nil {
		return New(cfg), noop, err
	}

	cleanup := func() { _ = rotator.Close() }
	if !fileCfg.WriteToStderr {
		cfg.Output = rotator
		cfg.Format = "json"
		return New(cfg), cleanup, nil
	}

	var console io.Writer = os.Stderr
	if cfg.Format == "console" {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(rotator, console)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, cleanup, nil
}
