package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type writerLogger struct {
	zl zerolog.Logger
}

// NewWriterLogger builds a logger that writes human-readable lines to an io.Writer.
func NewWriterLogger(w io.Writer) Logger {
	if w == nil {
		return NopLogger{}
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	return writerLogger{zl: zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()}
}

// NewJSONLogger builds a logger that writes one JSON object per line.
func NewJSONLogger(w io.Writer) Logger {
	if w == nil {
		return NopLogger{}
	}
	return writerLogger{zl: zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()}
}

func (l writerLogger) write(ev *zerolog.Event, msg string, obj any) {
	if obj != nil {
		ev = ev.Interface("obj", obj)
	}
	ev.Msg(msg)
}

func (l writerLogger) Info(msg string, obj any)  { l.write(l.zl.Info(), msg, obj) }
func (l writerLogger) Warn(msg string, obj any)  { l.write(l.zl.Warn(), msg, obj) }
func (l writerLogger) Debug(msg string, obj any) { l.write(l.zl.Debug(), msg, obj) }
func (l writerLogger) Error(msg string, obj any) { l.write(l.zl.Error(), msg, obj) }

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Debugf is a compatibility helper for format-style debug logging.
func Debugf(enabled bool, logger Logger, format string, args ...any) {
	Debug(enabled, logger, fmt.Sprintf(format, args...), nil)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Info(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}
