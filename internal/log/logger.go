// Package log provides the application logging facade, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Field is a single structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a structured logging field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger
type Logger struct {
	l *logrus.Logger
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput directs log output to w
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// NewLogger creates a new logger writing to stdout by default
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

var (
	isDebug = false
	std     = NewLogger()
)

// SetDebug enables or disables debug-level logging for all loggers
func SetDebug(debug bool) {
	isDebug = debug
}

// SetOutput redirects the package-level logger's output
func SetOutput(w io.Writer) {
	std.l.SetOutput(w)
}

// Entry is a log entry carrying structured fields
type Entry struct {
	e *logrus.Entry
}

// LogWithFields returns an entry with the given fields attached
func LogWithFields(fields ...Field) *Entry {
	return std.WithFields(fields...)
}

// WithFields returns an entry with the given fields attached
func (lg *Logger) WithFields(fields ...Field) *Entry {
	lf := logrus.Fields{}
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Entry{e: lg.l.WithFields(lf)}
}

// Info logs a message at info level
func (en *Entry) Info(msg string) { en.e.Info(msg) }

// Warn logs a message at warn level
func (en *Entry) Warn(msg string) { en.e.Warn(msg) }

// Error logs a message at error level
func (en *Entry) Error(msg string) { en.e.Error(msg) }

// Debug logs a message at debug level
func (en *Entry) Debug(msg string) {
	if isDebug {
		en.e.Debug(msg)
	}
}

// Info logs a message with arguments
func (lg *Logger) Info(msg string, args ...interface{}) {
	if len(args) > 0 {
		lg.l.Infof(msg+": %v", args...)
		return
	}
	lg.l.Info(msg)
}

// Infof logs a formatted message
func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

// Debug logs a message with arguments at debug level
func (lg *Logger) Debug(msg string, args ...interface{}) {
	if !isDebug {
		return
	}
	if len(args) > 0 {
		lg.l.Debugf(msg+": %v", args...)
		return
	}
	lg.l.Debug(msg)
}

// Debugf logs a formatted message at debug level
func (lg *Logger) Debugf(format string, args ...interface{}) {
	if !isDebug {
		return
	}
	lg.l.Debugf(format, args...)
}

// Warn logs a warning message with arguments
func (lg *Logger) Warn(msg string, args ...interface{}) {
	if len(args) > 0 {
		lg.l.Warnf(msg+": %v", args...)
		return
	}
	lg.l.Warn(msg)
}

// Warnf logs a formatted warning message
func (lg *Logger) Warnf(format string, args ...interface{}) {
	lg.l.Warnf(format, args...)
}

// Error logs an error message with arguments
func (lg *Logger) Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		lg.l.Errorf(msg+": %v", args...)
		return
	}
	lg.l.Error(msg)
}

// Errorf logs a formatted error message
func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Errorf(format, args...)
}

// Package-level logging functions using the default logger

func Info(format string, args ...interface{}) { std.Infof(format, args...) }

func Debug(msg string, args ...interface{}) { std.Debug(msg, args...) }

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

func Warn(format string, args ...interface{}) { std.Warnf(format, args...) }

func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

func Error(msg string, args ...interface{}) { std.Error(msg, args...) }

func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }
