package backend

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/asynclog/formatter"
	"github.com/philipp01105/asynclog/writer"
)

// QueueSize is the capacity of every worker's channel.
const QueueSize = 16

// Backend spawns workers.
type Backend interface {
	// Spawn starts a new, independent pipeline and returns its handle.
	Spawn() *Worker
}

// GoBackend spawns workers as tasks on a Runtime.
type GoBackend struct {
	rt           *Runtime
	writer       writer.Writer
	formatter    formatter.Formatter
	diag         *zap.Logger
	drainTimeout time.Duration
}

// Option configures a GoBackend.
type Option func(*GoBackend)

// WithFormatter sets the formatter workers render statements with
// (default: text).
func WithFormatter(f formatter.Formatter) Option {
	return func(b *GoBackend) {
		if f != nil {
			b.formatter = f
		}
	}
}

// WithDiagnostics sets the logger write failures are reported to. It must
// not feed back into an asynclog pipeline (default: zap production logger
// on stderr).
func WithDiagnostics(l *zap.Logger) Option {
	return func(b *GoBackend) {
		if l != nil {
			b.diag = l
		}
	}
}

// WithDrainTimeout bounds how long a worker keeps writing queued
// statements after its runtime shut down (default: 5s).
func WithDrainTimeout(d time.Duration) Option {
	return func(b *GoBackend) {
		if d > 0 {
			b.drainTimeout = d
		}
	}
}

// Current binds a backend to the runtime carried by ctx (see WithRuntime).
// Without one there is no pipeline to report through, so it panics with a
// *FatalError wrapping ErrNoRuntime.
func Current(ctx context.Context, w writer.Writer, opts ...Option) *GoBackend {
	rt, err := RuntimeFromContext(ctx)
	if err != nil {
		fatal("bind current runtime", err)
	}
	return FromRuntime(rt, w, opts...)
}

// FromRuntime binds a backend to rt. w is the template each spawned worker
// receives a clone of; the backend keeps w until Close.
func FromRuntime(rt *Runtime, w writer.Writer, opts ...Option) *GoBackend {
	if rt == nil {
		fatal("bind runtime", ErrNoRuntime)
	}
	b := &GoBackend{
		rt:           rt,
		writer:       w,
		formatter:    formatter.NewTextFormatter(formatter.Config{}),
		drainTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.diag == nil {
		b.diag = newDiagnostics()
	}
	return b
}

// Spawn creates a channel, clones the writer template and starts one
// consumer task on the backend's runtime.
func (b *GoBackend) Spawn() *Worker {
	if b.rt.ctx.Err() != nil {
		fatal("spawn worker", ErrRuntimeClosed)
	}

	p := &pipeline{
		queue:        make(chan message, QueueSize),
		writer:       b.writer.Clone(),
		formatter:    b.formatter,
		diag:         b.diag,
		drainTimeout: b.drainTimeout,
		senders:      1,
	}
	p.task = b.rt.Spawn(p.run)

	return &Worker{p: p}
}

// Close releases the backend's writer template. Workers already spawned
// keep their own clones.
func (b *GoBackend) Close() error {
	return b.writer.Close()
}

func newDiagnostics() *zap.Logger {
	l, err := zap.NewProductionConfig().Build()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("asynclog")
}
