package core

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity level of a log statement
type Level int8

const (
	// TraceLevel for very fine grained tracing
	TraceLevel Level = iota - 1
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default filter)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages (the logger exits after flushing)
	FatalLevel
	// PanicLevel for panic messages (the logger panics after flushing)
	PanicLevel
	// OffLevel is only meaningful as a filter: it admits nothing.
	OffLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case PanicLevel:
		return "PANIC"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "PANIC":
		return PanicLevel, nil
	case "OFF", "NONE":
		return OffLevel, nil
	}

	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// maxLevel is the process-wide filter. Written rarely, read on every
// log call by producers and consumers alike.
var maxLevel atomic.Int32

func init() {
	maxLevel.Store(int32(InfoLevel))
}

// SetMaxLevel sets the process-wide level filter. Statements below l are
// discarded, both at emission and when the consumer dequeues them.
func SetMaxLevel(l Level) {
	maxLevel.Store(int32(l))
}

// MaxLevel returns the current process-wide level filter.
func MaxLevel() Level {
	return Level(maxLevel.Load())
}

// Enabled reports whether the current filter admits l.
func Enabled(l Level) bool {
	return l < OffLevel && l >= MaxLevel()
}
