package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// EnvLogLevel overrides the configured level.
	EnvLogLevel = "KIOSK_LOG_LEVEL"
	// EnvLogFormat overrides the configured format.
	EnvLogFormat = "KIOSK_LOG_FORMAT"

	logFileName = "kiosk.log"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// File output, rotated by lumberjack. Empty Dir disables it.
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool

	SessionID string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ApplyEnv overrides level and format from KIOSK_LOG_LEVEL / KIOSK_LOG_FORMAT.
func (c Config) ApplyEnv() Config {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Level = ParseLevel(level)
	}
	if format := os.Getenv(EnvLogFormat); format == "json" || format == "console" {
		c.Format = format
	}
	return c
}

// New creates a new zerolog logger with the given configuration.
// The returned closer flushes the log file; it is a no-op without file output.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	var console io.Writer = os.Stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	var (
		output io.Writer = console
		closer io.Closer = nopCloser{}
	)
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, logFileName),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		// The file always gets JSON so it stays machine readable.
		output = zerolog.MultiLevelWriter(console, file)
		closer = file
	}

	builder := zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp()
	if cfg.SessionID != "" {
		builder = builder.Str("session_id", cfg.SessionID)
	}
	return builder.Logger(), closer, nil
}

// NewFromEnv creates a console logger based on environment variables only.
// Used by CLI commands that run before configuration is loaded.
func NewFromEnv() zerolog.Logger {
	logger, _, _ := New(DefaultConfig().ApplyEnv())
	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
