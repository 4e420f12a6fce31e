package logger

import (
	"github.com/philipp01105/asynclog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
	OffLevel   = core.OffLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// SetLevel sets the process-wide level filter shared by every Logger
func SetLevel(l Level) {
	core.SetMaxLevel(l)
}

// GetLevel returns the process-wide level filter
func GetLevel() Level {
	return core.MaxLevel()
}
