// Package logger provides the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// Log is the global logger instance.
	Log zerolog.Logger

	interactiveMode bool
	interactiveMu   sync.RWMutex
)

// SetInteractiveMode enables or disables interactive mode. When enabled,
// Info and Warn logs are suppressed so they do not interleave with an
// attached exec session's TTY output. Error and Fatal are never suppressed.
func SetInteractiveMode(enabled bool) {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()
	interactiveMode = enabled
}

// Init initializes the global logger. debug selects Debug level; otherwise
// Info level is used.
func Init(debug bool) {
	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	Log = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func shouldSuppress() bool {
	interactiveMu.RLock()
	interactive := interactiveMode
	interactiveMu.RUnlock()
	return interactive && Log.GetLevel() != zerolog.DebugLevel
}

// Debug logs a debug message. Never suppressed.
func Debug() *zerolog.Event {
	return Log.Debug()
}

// Info logs an info message. Suppressed in interactive mode unless debug level.
func Info() *zerolog.Event {
	if shouldSuppress() {
		nop := zerolog.Nop()
		return nop.Info()
	}
	return Log.Info()
}

// Warn logs a warning message. Suppressed in interactive mode unless debug level.
func Warn() *zerolog.Event {
	if shouldSuppress() {
		nop := zerolog.Nop()
		return nop.Warn()
	}
	return Log.Warn()
}

// Error logs an error message. Never suppressed.
func Error() *zerolog.Event {
	return Log.Error()
}

// Fatal logs a fatal message. Sending the event (Msg/Msgf/Send) exits the
// process with status 1, as zerolog's Fatal level does.
func Fatal() *zerolog.Event {
	return Log.Fatal()
}

// WithField returns a logger with an additional field attached.
func WithField(key string, value interface{}) zerolog.Logger {
	return Log.With().Interface(key, value).Logger()
}
