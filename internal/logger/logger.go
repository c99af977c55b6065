// Package logger provides structured logging for latexdoc
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with latexdoc-specific functionality
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	Pretty     bool   // pretty-print for development
	Output     io.Writer
	WithCaller bool
}

// NewLogger creates a new structured logger. The level applies to this
// instance only, so documents in one process can log at different levels.
func NewLogger(cfg Config) *Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	// Pretty printing for development
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "latexdoc").
		Logger()

	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// FromZerolog wraps an existing zerolog logger, typically one owned by the
// host application
func FromZerolog(zl zerolog.Logger) *Logger {
	return &Logger{zlog: zl}
}

// GetZerolog returns the underlying zerolog logger
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zlog
}

// Info logs an info message
func (l *Logger) Info(msg string) *zerolog.Event {
	return l.zlog.Info().Str("msg", msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) *zerolog.Event {
	return l.zlog.Debug().Str("msg", msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) *zerolog.Event {
	return l.zlog.Warn().Str("msg", msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) *zerolog.Event {
	return l.zlog.Error().Str("msg", msg)
}

// DocumentLogger returns a logger scoped to one document
func (l *Logger) DocumentLogger(docID string) *Logger {
	return &Logger{
		zlog: l.zlog.With().
			Str("component", "document").
			Str("document_id", docID).
			Logger(),
	}
}

// LogParse logs a parse with structured fields
func (l *Logger) LogParse(source string, lineCount, sectionCount int, duration time.Duration, err error) {
	event := l.zlog.Info().
		Str("component", "document").
		Str("source", source).
		Dur("duration_ms", duration).
		Int("line_count", lineCount).
		Int("section_count", sectionCount)

	if err != nil {
		event = l.zlog.Error().
			Str("component", "document").
			Str("source", source).
			Dur("duration_ms", duration).
			Err(err)
	}

	event.Msg("Document parse completed")
}

// LogOperation logs a document operation with structured fields
func (l *Logger) LogOperation(operation string, duration time.Duration, err error) {
	event := l.zlog.Debug().
		Str("component", "document").
		Str("operation", operation).
		Dur("duration_ms", duration)

	if err != nil {
		event = l.zlog.Error().
			Str("component", "document").
			Str("operation", operation).
			Dur("duration_ms", duration).
			Err(err)
	}

	event.Msg("Document operation completed")
}
