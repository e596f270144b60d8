package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger with a JSON writer on stdout.
// It ensures that the logger is initialized only once.
func Init() {
	once.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		defaultLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		defaultLogger.Info().Msg("Logger initialized")
	})
}

// Get returns the initialized default logger.
func Get() zerolog.Logger {
	Init()
	return defaultLogger
}

// SetLevel adjusts the global log level from its configured name.
// Unknown names fall back to info.
func SetLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// Info logs an informational message with optional key-value fields.
func Info(msg string, args ...any) {
	l := Get()
	withFields(l.Info(), args).Msg(msg)
}

// Warn logs a warning message with optional key-value fields.
func Warn(msg string, args ...any) {
	l := Get()
	withFields(l.Warn(), args).Msg(msg)
}

// Error logs an error message, attaching err when non-nil.
func Error(msg string, err error, args ...any) {
	l := Get()
	ev := l.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	withFields(ev, args).Msg(msg)
}

// Debug logs a debug message with optional key-value fields.
func Debug(msg string, args ...any) {
	l := Get()
	withFields(l.Debug(), args).Msg(msg)
}

// withFields applies alternating key-value pairs to the event. Keys that are
// not strings are skipped rather than panicking.
func withFields(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	return ev
}
