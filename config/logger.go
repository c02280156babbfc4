package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/lumberjack"
)

// LogConfig selects the log destination. With an empty Logfile records go to
// the fallback writer given to NewLogger.
type LogConfig struct {
	Level   string `yaml:"level" toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Logfile string `yaml:"logfile" toml:"logfile"`
	// MaxSize is the size in megabytes at which the log file is rotated.
	MaxSize int `yaml:"max_log_size" toml:"max_log_size" validate:"min=0"`
	// MaxAge is the number of days rotated files are kept.
	MaxAge int `yaml:"max_log_age" toml:"max_log_age" validate:"min=0"`
}

// SlogLevel returns the slog level for Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Level)
	}
}

// NewLogger returns a JSON logger. The returned closer releases the log file
// and is a no-op when logging to fallback.
func (c LogConfig) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	var (
		w      = fallback
		closer io.Closer = nopCloser{}
	)
	if c.Logfile != "" {
		lj := &lumberjack.Logger{
			Filename: c.Logfile,
			MaxSize:  c.MaxSize,
			MaxAge:   c.MaxAge,
		}
		w, closer = lj, lj
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
