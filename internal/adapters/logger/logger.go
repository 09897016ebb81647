// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w at info level.
func NewWithWriter(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: slog.New(newHandler(w, level)),
		level:  level,
	}
}

func newHandler(w io.Writer, level *slog.LevelVar) slog.Handler {
	// Text handler for human-readable output, on stderr as per 12-factor app guidelines.
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetOutput updates the logger's output destination, keeping the current level.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w, l.level))
}

// SetLevel changes the minimum level that is emitted.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// Debug logs a debug message with optional key/value attributes.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
