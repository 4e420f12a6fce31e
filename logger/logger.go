package logger

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/philipp01105/asynclog/backend"
	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/writer"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// defaultCallerSkip skips log and the exported level method.
const defaultCallerSkip = 2

// Logger is the producer-facing logger. It owns one worker handle and
// never writes anything itself: accepted calls become statements that the
// worker's background consumer formats and writes.
type Logger struct {
	worker        *backend.Worker
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseClock   bool
	closed        atomic.Bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	backend       backend.Backend
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseClock   bool
}

// NewBuilder creates a new logger builder spawning its worker from b
func NewBuilder(b backend.Backend) *Builder {
	return &Builder{
		backend:    b,
		callerSkip: defaultCallerSkip,
	}
}

// WithFields adds default fields to all statements
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adds extra frames to skip when capturing the caller, for
// wrappers around Logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = defaultCallerSkip + skip
	return b
}

// WithCoarseClock timestamps statements from a clock cached every 500µs
// instead of calling time.Now per statement.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build spawns one worker and returns the Logger owning it
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		worker:        b.backend.Spawn(),
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		coarseClock:   b.coarseClock,
	}
}

// New builds a Logger on the runtime carried by ctx, writing to w. It
// panics if ctx carries no runtime (see backend.WithRuntime).
func New(ctx context.Context, w writer.Writer, opts ...backend.Option) *Logger {
	return NewBuilder(backend.Current(ctx, w, opts...)).Build()
}

// NewWithRuntime builds a Logger on rt, writing to w.
func NewWithRuntime(rt *backend.Runtime, w writer.Writer, opts ...backend.Option) *Logger {
	return NewBuilder(backend.FromRuntime(rt, w, opts...)).Build()
}

// With creates a new Logger with additional fields. The child gets its own
// handle on the same worker and must be closed independently.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		worker:        l.worker.Clone(),
		fields:        newFields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
		coarseClock:   l.coarseClock,
	}
}

// Enabled reports whether the process-wide filter admits level. Callers
// can use it to skip building expensive arguments.
func (l *Logger) Enabled(level core.Level) bool {
	return core.Enabled(level)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !core.Enabled(level) {
		return
	}
	l.log(level, msg, fields)
}

// log builds the statement and hands it to the worker. It blocks only
// while the worker's queue is full.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	var caller core.CallerInfo
	if l.includeCaller {
		caller = core.GetCaller(l.callerSkip)
	}
	l.emit(l.now(), level, msg, fields, caller)
}

func (l *Logger) emit(t time.Time, level core.Level, msg string, fields []core.Field, caller core.CallerInfo) {
	stmt := core.NewStatement(t, level, msg, l.fields, fields)
	stmt.Caller = caller
	l.worker.Emit(stmt)
}

func (l *Logger) now() time.Time {
	if l.coarseClock {
		return core.CoarseNow()
	}
	return time.Now()
}

// Flush blocks until every statement this goroutine logged before the
// call has been written. Statements other goroutines log concurrently may
// or may not be included.
func (l *Logger) Flush() {
	l.worker.Flush()
}

// Stats returns the worker's counters
func (l *Logger) Stats() backend.Snapshot {
	return l.worker.Stats()
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !core.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !core.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !core.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !core.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !core.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message, flushes, and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	l.Flush()
	osExit(1)
}

// Panic logs a panic message, flushes, and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	l.Flush()
	panic(msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !core.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !core.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !core.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !core.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !core.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting, flushes, and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
	l.Flush()
	osExit(1)
}

// Panicf logs a panic message with formatting, flushes, and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(core.PanicLevel, msg, nil)
	l.Flush()
	panic(msg)
}

// Close flushes and releases the logger's worker handle. When it was the
// last handle the worker writes what is queued and stops. Closing twice
// is a no-op. Close always returns nil; it exists so Logger satisfies
// io.Closer.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	select {
	case <-l.worker.Done():
	default:
		l.worker.Flush()
	}
	l.worker.Close()
	return nil
}
