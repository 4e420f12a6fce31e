// Package backend runs the consumer side of an asynclog pipeline.
//
// A Backend is bound to a Runtime and holds a writer template. Every call
// to Spawn creates an independent pipeline: a channel with room for
// QueueSize messages, a clone of the writer, and exactly one consumer task
// started on the runtime. The returned Worker is the producer-side handle.
//
// Producers call Worker.Emit. When QueueSize messages are already queued
// Emit blocks until the consumer makes room; this is the only form of
// backpressure and nothing is ever dropped on the producer side. The
// consumer checks every dequeued statement against the current
// process-wide level filter (core.Enabled) before formatting and writing
// it, so the filter in force at write time wins over the one that was in
// force at emission time.
//
// Worker.Flush sends a barrier through the same channel and waits until
// the consumer reaches it. Since the channel is FIFO, every statement the
// caller emitted before Flush has been handed to the writer by then.
//
// A worker stops when its last handle is closed (the channel is closed
// and drained) or when its runtime shuts down (whatever is already queued
// is drained within the drain timeout). Emitting to, or flushing, a
// stopped worker is a programming error and panics with a *FatalError.
// Write failures are not: they are reported on the diagnostics logger,
// which is a zap.Logger separate from the pipeline, and the consumer
// carries on with the next statement.
package backend
