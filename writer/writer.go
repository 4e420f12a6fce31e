package writer

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Write and Sync on a writer whose handle has
// been closed.
var ErrClosed = errors.New("writer closed")

// Writer is the sink of a worker. Write receives exactly one formatted
// statement per call.
type Writer interface {
	io.Writer

	// UseColor reports whether the formatter should emit ANSI color.
	UseColor() bool

	// Clone returns a writer sharing this writer's destination.
	Clone() Writer

	// Close releases this clone. The destination is closed when the last
	// clone sharing it is closed.
	Close() error
}

// Syncer is implemented by writers that can commit written data to
// durable storage. Workers call it when they process a flush barrier.
type Syncer interface {
	Sync() error
}

// handle is the destination shared by every clone of a writer.
type handle struct {
	mu    sync.Mutex
	w     io.Writer
	close func() error
	sync  func() error
	refs  int
}

func newHandle(w io.Writer, closeFn, syncFn func() error) *handle {
	return &handle{w: w, close: closeFn, sync: syncFn, refs: 1}
}

// write holds the lock for the whole statement, so two statements never
// interleave even when several workers share the handle.
func (h *handle) write(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.w == nil {
		return 0, ErrClosed
	}
	return h.w.Write(p)
}

func (h *handle) flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.w == nil {
		return ErrClosed
	}
	if h.sync == nil {
		return nil
	}
	return h.sync()
}

func (h *handle) acquire() *handle {
	h.mu.Lock()
	h.refs++
	h.mu.Unlock()
	return h
}

func (h *handle) release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.refs--
	if h.refs > 0 || h.w == nil {
		return nil
	}
	h.w = nil
	if h.close == nil {
		return nil
	}
	return h.close()
}

// ref is one clone's claim on a handle.
type ref struct {
	h      *handle
	closed atomic.Bool
}

func (r *ref) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	return r.h.write(p)
}

func (r *ref) Sync() error {
	if r.closed.Load() {
		return ErrClosed
	}
	return r.h.flush()
}

func (r *ref) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.h.release()
}
