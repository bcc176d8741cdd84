// Package logger provides structured logging using slog for roxl.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	// Default is the default logger instance.
	Default *slog.Logger
)

func init() {
	// Initialize with console output by default
	Default = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Config holds logger configuration.
type Config struct {
	Path    string
	Level   string
	Console bool
	// Out overrides the console writer (os.Stderr).
	Out io.Writer
}

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init initializes the logger with the given configuration.
// With neither console nor file output, log records are discarded; the
// full-screen UI owns the terminal and must not be written over.
func Init(cfg Config) error {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var writers []io.Writer

	if cfg.Console {
		out := cfg.Out
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, out)
	}

	if cfg.Path != "" {
		logDir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}

		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	Default = slog.New(slog.NewTextHandler(writer, opts))
	return nil
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Default.Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	Default.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Default.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Default.Error(msg, args...)
}

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger {
	return Default.With(args...)
}
