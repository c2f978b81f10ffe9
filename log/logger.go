// Package log is a thin wrapper over logrus that keeps this tree's
// original Level/Logger API (bracketed level names, an optional prefix,
// package-level convenience functions over a standard logger) while
// gaining logrus's Entry/Hook/Formatter machinery underneath.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level represents the severity level of a log message.
type Level int

const (
	// DebugLevel is for detailed debugging information.
	DebugLevel Level = iota
	// InfoLevel is for general informational messages.
	InfoLevel
	// WarnLevel is for warning messages about potential issues.
	WarnLevel
	// ErrorLevel is for error messages.
	ErrorLevel
)

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toLogrus() logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	case WarnLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func levelFromLogrus(l logrus.Level) Level {
	switch l {
	case logrus.DebugLevel, logrus.TraceLevel:
		return DebugLevel
	case logrus.InfoLevel:
		return InfoLevel
	case logrus.WarnLevel:
		return WarnLevel
	default:
		return ErrorLevel
	}
}

// bracketFormatter renders entries as "[timestamp] [prefix] [LEVEL] msg
// key=value ...", the text shape this package produced before logrus was
// wired in underneath it.
type bracketFormatter struct {
	prefix string
}

func (f *bracketFormatter) Format(e *logrus.Entry) ([]byte, error) {
	ts := e.Time.Format("2006-01-02 15:04:05.000")
	levelName := levelFromLogrus(e.Level).String()

	var out string
	if f.prefix != "" {
		out = fmt.Sprintf("[%s] [%s] [%s] %s", ts, f.prefix, levelName, e.Message)
	} else {
		out = fmt.Sprintf("[%s] [%s] %s", ts, levelName, e.Message)
	}
	for k, v := range e.Data {
		out += fmt.Sprintf(" %s=%v", k, v)
	}
	out += "\n"
	return []byte(out), nil
}

// Logger wraps a *logrus.Logger.
type Logger struct {
	mu     sync.Mutex
	l      *logrus.Logger
	prefix string
}

// global logger instance
var std = New(os.Stderr, WarnLevel)

// New creates a new Logger instance.
func New(out io.Writer, level Level) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level.toLogrus())
	l.SetFormatter(&bracketFormatter{})
	return &Logger{l: l}
}

// SetOutput sets the output destination for the standard logger.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.l.SetOutput(w)
}

// SetLevel sets the minimum log level for the standard logger.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.l.SetLevel(level.toLogrus())
}

// GetLevel returns the standard logger's current log level.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return levelFromLogrus(std.l.GetLevel())
}

// SetPrefix sets a prefix for all messages from the standard logger.
func SetPrefix(prefix string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.prefix = prefix
	std.l.SetFormatter(&bracketFormatter{prefix: prefix})
}

func (l *Logger) log(level Level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.l.WithFields(logrus.Fields(fields))
	switch level {
	case DebugLevel:
		entry.Debug(msg)
	case InfoLevel:
		entry.Info(msg)
	case WarnLevel:
		entry.Warn(msg)
	default:
		entry.Error(msg)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.log(DebugLevel, msg, nil)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.log(InfoLevel, msg, nil)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.log(WarnLevel, msg, nil)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log(ErrorLevel, msg, nil)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// WithFields logs a message with structured key-value fields.
func (l *Logger) WithFields(level Level, msg string, fields map[string]interface{}) {
	l.log(level, msg, fields)
}

// Global logging functions that use the standard logger.

// Debug logs a debug message using the standard logger.
func Debug(msg string) { std.Debug(msg) }

// Debugf logs a formatted debug message using the standard logger.
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

// Info logs an info message using the standard logger.
func Info(msg string) { std.Info(msg) }

// Infof logs a formatted info message using the standard logger.
func Infof(format string, args ...interface{}) { std.Infof(format, args...) }

// Warn logs a warning message using the standard logger.
func Warn(msg string) { std.Warn(msg) }

// Warnf logs a formatted warning message using the standard logger.
func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

// Error logs an error message using the standard logger.
func Error(msg string) { std.Error(msg) }

// Errorf logs a formatted error message using the standard logger.
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// WithFields logs a message with structured key-value fields using the
// standard logger.
func WithFields(level Level, msg string, fields map[string]interface{}) {
	std.WithFields(level, msg, fields)
}
