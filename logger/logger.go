// Package logger is a small five-level log formatter wrapping a
// user-supplied print function. It carries no output machinery of its
// own: records that pass the level threshold are formatted, tagged and
// handed to the callback, which decides where they go.
package logger

import (
	"fmt"
	"strings"
)

// Level orders log records by severity; smaller is more severe.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo // default threshold
	LevelDebug
	LevelTrace
)

// tag returns the single-letter marker prepended to each record.
func (l Level) tag() byte {
	switch l {
	case LevelError:
		return 'E'
	case LevelWarn:
		return 'W'
	case LevelInfo:
		return 'I'
	case LevelDebug:
		return 'D'
	case LevelTrace:
		return 'T'
	}
	return '?'
}

// PrintFunc receives the fully formatted record, printf-style.
type PrintFunc func(format string, args ...interface{})

func stdout(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// Logger filters records against a level threshold and forwards the
// survivors to its output function. All methods are safe on a nil
// Logger: writes are dropped, reads return defaults.
type Logger struct {
	level Level
	out   PrintFunc
}

// New creates a logger with the given threshold. A nil out falls back to
// printing on stdout.
func New(level Level, out PrintFunc) *Logger {
	if out == nil {
		out = stdout
	}
	return &Logger{level: level, out: out}
}

// SetLevel changes the threshold.
func (l *Logger) SetLevel(level Level) {
	if l != nil {
		l.level = level
	}
}

// GetLevel returns the threshold, or LevelInfo for a nil logger.
func (l *Logger) GetLevel() Level {
	if l == nil {
		return LevelInfo
	}
	return l.level
}

// SetOutput changes the output function. A nil out restores the stdout
// default.
func (l *Logger) SetOutput(out PrintFunc) {
	if l == nil {
		return
	}
	if out == nil {
		out = stdout
	}
	l.out = out
}

// Logf emits one record at the given level if it passes the threshold.
// A trailing newline is appended when the message lacks one.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	if l == nil || level > l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	l.out("[%c] %s", level.tag(), msg)
}

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(LevelError, format, args...)
}

// Warnf logs at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf(LevelWarn, format, args...)
}

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(LevelInfo, format, args...)
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(LevelDebug, format, args...)
}

// Tracef logs at LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Logf(LevelTrace, format, args...)
}
