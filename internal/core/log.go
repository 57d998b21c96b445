// Package core/log.go - Structured Logging
//
// Component-tagged logging backed by zerolog. Output goes to stderr so log
// lines never mix with TUI frames on stdout; the console writer is used for
// humans and raw JSON when PROGMAN_JSON is set.

package core

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides structured logging for all components. The zero value is
// a disabled logger, which keeps it safe to use in tests.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger creates a logger from the process configuration.
func NewLogger(cfg *Config) *Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	} else if cfg.Quiet {
		level = zerolog.ErrorLevel
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if cfg.JSONOutput {
		writer = os.Stderr
	}

	zl := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// SetLevel changes the minimum emitted level. The TUI raises this to
// error-only while the alt screen is active.
func (l *Logger) SetLevel(level zerolog.Level) {
	l.zl = l.zl.Level(level)
}

// Info logs an informational message for a component.
func (l *Logger) Info(component, message string) {
	l.zl.Info().Str("component", component).Msg(message)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(component, format string, args ...interface{}) {
	l.zl.Info().Str("component", component).Msg(fmt.Sprintf(format, args...))
}

// Debug logs a debug message for a component.
func (l *Logger) Debug(component, message string) {
	l.zl.Debug().Str("component", component).Msg(message)
}

// Warn logs a warning for a component.
func (l *Logger) Warn(component, message string) {
	l.zl.Warn().Str("component", component).Msg(message)
}

// Error logs a failure for a component.
func (l *Logger) Error(component string, err error) {
	l.zl.Error().Str("component", component).Err(err).Msg("operation failed")
}
