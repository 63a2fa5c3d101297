// Package log provides leveled structured logging for fw.
//
// Diagnostics go to stderr so that stdout stays reserved for primary
// data output (paths, shell snippets, project listings).
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Fields carries structured key/value pairs attached to a log entry.
type Fields = logrus.Fields

type ctxKey struct{}

// Logger is a leveled structured logger. The zero value is not usable;
// construct one with New or Discard. WithFields returns a derived logger
// carrying the fields on every subsequent entry.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger writing to out.
// Verbose enables trace output, quiet suppresses everything below error.
func New(out io.Writer, verbose, quiet bool) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	switch {
	case verbose:
		l.SetLevel(logrus.TraceLevel)
	case quiet:
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}

	return &Logger{entry: logrus.NewEntry(l)}
}

// Discard returns a logger that drops all output. Used in tests and as
// the fallback when no logger is attached to a context.
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: logrus.NewEntry(l)}
}

// WithFields returns a logger that attaches fields to every entry.
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}

// WithField returns a logger that attaches a single field to every entry.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Trace(args ...any) { l.entry.Trace(args...) }
func (l *Logger) Debug(args ...any) { l.entry.Debug(args...) }
func (l *Logger) Info(args ...any)  { l.entry.Info(args...) }
func (l *Logger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *Logger) Error(args ...any) { l.entry.Error(args...) }

func (l *Logger) Tracef(format string, args ...any) { l.entry.Tracef(format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a discarding logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Discard()
}
