// Package common holds shared CLI plumbing.
package common

import (
	"fmt"
	"io"
	"strings"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLogLevel converts a string to LogLevel, defaulting to info.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger writes leveled messages to a single stream, normally stderr, so
// command output on stdout stays machine-readable.
type Logger struct {
	out   io.Writer
	level LogLevel
}

// NewLogger creates a logger that drops messages below level.
func NewLogger(out io.Writer, level LogLevel) *Logger {
	return &Logger{out: out, level: level}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LogLevelDebug, "DEBUG", format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LogLevelInfo, "INFO", format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LogLevelWarn, "WARN", format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LogLevelError, "ERROR", format, args...)
}

func (l *Logger) logf(level LogLevel, tag, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s: %s\n", tag, fmt.Sprintf(format, args...))
}
