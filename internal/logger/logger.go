// Package logger holds the process-wide zerolog logger and the helpers that
// carry a run-scoped logger through a context.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const (
	RunIDKey  ctxKey = "run_id"
	LoggerKey ctxKey = "logger"
)

var globalLogger = zerolog.Nop()

// Init configures the global logger. Unknown levels fall back to info; a nil
// writer means stderr so the report on stdout stays clean.
func Init(level string, jsonFormat bool, w io.Writer) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if w == nil {
		w = os.Stderr
	}
	output := w
	if !jsonFormat {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	globalLogger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "sprintsum").
		Logger()
	return &globalLogger
}

// Global returns the global logger.
func Global() *zerolog.Logger {
	return &globalLogger
}

// Get returns the logger stored in ctx, or the global one.
func Get(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &globalLogger
	}
	if l, ok := ctx.Value(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	return &globalLogger
}

// WithRunID tags ctx and its logger with the id of a report run.
func WithRunID(ctx context.Context, runID string) context.Context {
	l := Get(ctx).With().Str("run_id", runID).Logger()
	ctx = context.WithValue(ctx, RunIDKey, runID)
	return context.WithValue(ctx, LoggerKey, &l)
}

// GetRunID extracts the run id from ctx.
func GetRunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}
