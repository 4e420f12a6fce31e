package backend

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Runtime is the task group consumer tasks run on. It owns a context that
// is cancelled by Shutdown; tasks observe the cancellation and return.
type Runtime struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewRuntime creates a Runtime whose tasks stop when parent is done or
// Shutdown is called.
func NewRuntime(parent context.Context) *Runtime {
	ctx, cancel := context.WithCancel(parent)
	group, ctx := errgroup.WithContext(ctx)
	return &Runtime{ctx: ctx, cancel: cancel, group: group}
}

// Context returns the runtime's context.
func (r *Runtime) Context() context.Context {
	return r.ctx
}

// Spawn runs task on the runtime and returns a handle to it.
func (r *Runtime) Spawn(task func(ctx context.Context)) *Task {
	t := &Task{done: make(chan struct{})}
	r.group.Go(func() error {
		defer close(t.done)
		task(r.ctx)
		return nil
	})
	return t
}

// Shutdown cancels the runtime and waits for every task to return.
func (r *Runtime) Shutdown() error {
	r.cancel()
	return r.group.Wait()
}

// Task is a handle to a task started with Runtime.Spawn.
type Task struct {
	done chan struct{}
}

// Done is closed when the task has returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

type runtimeKey struct{}

// WithRuntime returns a copy of ctx carrying rt, making it the ambient
// runtime for Current.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFromContext returns the runtime carried by ctx.
func RuntimeFromContext(ctx context.Context) (*Runtime, error) {
	if ctx == nil {
		return nil, ErrNoRuntime
	}
	rt, ok := ctx.Value(runtimeKey{}).(*Runtime)
	if !ok || rt == nil {
		return nil, ErrNoRuntime
	}
	return rt, nil
}
