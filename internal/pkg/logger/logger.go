package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config represents logger configuration
type Config struct {
	Level LogLevel
	// Pretty switches to zerolog's console writer
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

// ParseLevel maps a config string onto a LogLevel, falling back to info.
func ParseLevel(level string) LogLevel {
	switch LogLevel(strings.ToLower(strings.TrimSpace(level))) {
	case DebugLevel:
		return DebugLevel
	case WarnLevel:
		return WarnLevel
	case ErrorLevel:
		return ErrorLevel
	case FatalLevel:
		return FatalLevel
	default:
		return InfoLevel
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Configure installs the process-wide logger and returns it.
func Configure(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(config.Level.zerologLevel())

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Str("service", "unitutor").Logger()
	log.Logger = defaultLogger
	return defaultLogger
}

// Component returns a child logger tagged with the component name
func Component(name string) zerolog.Logger {
	return defaultLogger.With().Str("component", name).Logger()
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Fatal logs a fatal message and exits
func Fatal() *zerolog.Event {
	return defaultLogger.Fatal()
}

func init() {
	Configure(Config{
		Level:  InfoLevel,
		Pretty: true,
		Output: os.Stdout,
	})
}
