package backend

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/formatter"
	"github.com/philipp01105/asynclog/writer"
)

// State is the lifecycle state of a worker's consumer.
type State int32

const (
	// Running consumes messages as they arrive
	Running State = iota
	// Draining writes what is left in the queue before stopping
	Draining
	// Stopped is terminal; the consumer task has returned
	Stopped
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Draining:
		return "Draining"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// maxRetainedBuffer caps the consumer's format buffer; a larger one is
// dropped after use so a single huge statement does not pin memory.
const maxRetainedBuffer = 64 * 1024

// message is either a statement or a flush barrier.
type message struct {
	stmt    core.Statement
	barrier chan struct{}
}

// pipeline is shared by every handle of one worker.
type pipeline struct {
	queue        chan message
	task         *Task
	writer       writer.Writer
	formatter    formatter.Formatter
	diag         *zap.Logger
	drainTimeout time.Duration
	stats        Stats
	state        atomic.Int32

	// mu orders sends against the final close of queue.
	mu      sync.RWMutex
	senders int
}

// Worker is a producer-side handle to one background consumer. It is safe
// for concurrent use. Clone hands out further handles; the consumer stops
// once every handle has been closed and the queue is empty.
type Worker struct {
	p      *pipeline
	closed atomic.Bool
}

// Emit queues stmt for the consumer. It blocks while the queue holds
// QueueSize messages. If the consumer is gone, or this handle was closed,
// Emit panics with a *FatalError.
func (w *Worker) Emit(stmt core.Statement) {
	w.send(message{stmt: stmt}, "emit statement")
}

// Flush returns once every statement emitted through this worker before
// the call has been handed to the writer, and the writer has been synced
// if it implements writer.Syncer. It panics with a *FatalError when the
// consumer is not running.
func (w *Worker) Flush() {
	ack := make(chan struct{})
	w.send(message{barrier: ack}, "flush")

	select {
	case <-ack:
	case <-w.p.task.Done():
		// The consumer may have acknowledged just before exiting.
		select {
		case <-ack:
		default:
			fatal("flush", ErrWorkerStopped)
		}
	}
}

func (w *Worker) send(msg message, op string) {
	p := w.p
	p.mu.RLock()
	defer p.mu.RUnlock()

	if w.closed.Load() {
		fatal(op, ErrWorkerClosed)
	}

	select {
	case <-p.task.Done():
		fatal(op, ErrWorkerStopped)
	default:
	}

	select {
	case p.queue <- msg:
	case <-p.task.Done():
		fatal(op, ErrWorkerStopped)
	}
}

// Clone returns another handle to the same pipeline.
func (w *Worker) Clone() *Worker {
	p := w.p
	p.mu.Lock()
	defer p.mu.Unlock()

	if w.closed.Load() {
		fatal("clone worker", ErrWorkerClosed)
	}
	p.senders++
	return &Worker{p: p}
}

// Close releases this handle. Closing the last handle closes the queue;
// the consumer writes what is queued and stops. Closing twice is a no-op.
func (w *Worker) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}

	p := w.p
	p.mu.Lock()
	defer p.mu.Unlock()

	p.senders--
	if p.senders == 0 {
		close(p.queue)
	}
}

// Done is closed once the consumer task has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.p.task.Done()
}

// State reports the consumer's current state.
func (w *Worker) State() State {
	return State(w.p.state.Load())
}

// Stats returns a snapshot of the consumer's counters.
func (w *Worker) Stats() Snapshot {
	return w.p.stats.GetSnapshot()
}

// run is the consumer task.
func (p *pipeline) run(ctx context.Context) {
	defer p.stop()

	buf := new(bytes.Buffer)
	for {
		select {
		case msg, ok := <-p.queue:
			if !ok {
				// Closed by the last handle; close happens after the last
				// send, so nothing is left to drain.
				p.state.Store(int32(Draining))
				return
			}
			buf = p.process(msg, buf)
		case <-ctx.Done():
			p.state.Store(int32(Draining))
			p.drain(buf)
			return
		}
	}
}

// drain processes whatever is already queued without waiting for more,
// giving up after drainTimeout.
func (p *pipeline) drain(buf *bytes.Buffer) {
	deadline := time.After(p.drainTimeout)
	for {
		select {
		case msg, ok := <-p.queue:
			if !ok {
				return
			}
			buf = p.process(msg, buf)
		case <-deadline:
			p.diag.Warn("drain timeout reached, queued statements not written",
				zap.Int("queued", len(p.queue)))
			return
		default:
			return
		}
	}
}

func (p *pipeline) stop() {
	if err := p.writer.Close(); err != nil {
		p.diag.Error("close log writer", zap.Error(err))
	}
	p.state.Store(int32(Stopped))
}

func (p *pipeline) process(msg message, buf *bytes.Buffer) *bytes.Buffer {
	if msg.barrier != nil {
		if s, ok := p.writer.(writer.Syncer); ok {
			if err := s.Sync(); err != nil {
				p.diag.Error("sync log writer", zap.Error(err))
			}
		}
		p.stats.IncrementFlushed()
		close(msg.barrier)
		return buf
	}

	stmt := &msg.stmt
	// The filter may have changed since the producer checked it.
	if !core.Enabled(stmt.Level) {
		p.stats.IncrementFiltered()
		return buf
	}

	buf.Reset()
	p.formatter.Format(buf, stmt, p.writer.UseColor())
	if _, err := p.writer.Write(buf.Bytes()); err != nil {
		p.stats.IncrementFailed()
		p.diag.Error("write log statement",
			zap.Error(err),
			zap.Stringer("level", stmt.Level),
			zap.String("message", stmt.Message),
		)
	} else {
		p.stats.IncrementProcessed()
	}

	if buf.Cap() > maxRetainedBuffer {
		return new(bytes.Buffer)
	}
	return buf
}
