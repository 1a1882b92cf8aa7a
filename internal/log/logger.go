package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger; every record carries the emitting component.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// New creates a text logger writing to cfg.Output.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	component := cfg.Component
	if component == "" {
		component = ComponentApp
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level})
	return &Logger{Logger: slog.New(handler).With(FieldComponent, component)}
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return New(Config{Output: io.Discard})
}

// WithComponent returns a child logger tagged with a different component name.
func (l *Logger) WithComponent(component string) *Logger {
	if l == nil {
		return Nop().WithComponent(component)
	}
	return &Logger{Logger: l.Logger.With(FieldComponent, component)}
}

// ParseLevel maps debug|info|warn|error onto slog levels.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", value)
	}
}
