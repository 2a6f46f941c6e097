// Package logging sets up the process-wide structured logger. The TUI owns
// the terminal, so logs only ever go to a rotated file or nowhere.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Component constants for structured logging.
const (
	CompApp     = "app"
	CompConfirm = "confirm"
	CompOverlay = "overlay"
	CompStorage = "storage"
)

// FileName is the log file created in Config.Dir.
const FileName = "tidy.log"

// Config holds logging configuration.
type Config struct {
	// Dir is the directory for the log file. Empty discards all logs.
	Dir string

	// Level is the minimum log level: "debug", "info", "warn", "error"
	Level string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	globalLogger *slog.Logger
	globalMu     sync.RWMutex
	lumberjackW  *lumberjack.Logger
)

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init initializes the global logger, replacing any previous one.
func Init(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()

	_ = closeWriter()

	if cfg.Dir == "" {
		globalLogger = slog.New(slog.DiscardHandler)
		return
	}

	lumberjackW = &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, FileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	globalLogger = newLogger(lumberjackW, parseLevel(cfg.Level))
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Logger returns the global logger. Safe to call before Init (discards).
func Logger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return globalLogger
}

// For returns a sub-logger with the component field set.
func For(component string) *slog.Logger {
	return Logger().With(slog.String("component", component))
}

// Close flushes and closes the log file.
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	err := closeWriter()
	globalLogger = nil
	return err
}

func closeWriter() error {
	if lumberjackW == nil {
		return nil
	}
	err := lumberjackW.Close()
	lumberjackW = nil
	return err
}
