// Package core defines the values that travel through an asynclog pipeline.
//
// A Statement is the unit of work handed from a producer goroutine to the
// background consumer of a Worker. It is built once per accepted log call,
// sent by value over the Worker's channel and never modified afterwards.
//
// Severity is a Level. The process-wide level filter lives here as well:
// SetMaxLevel stores the threshold in an atomic and Enabled reads it
// without locking. The filter is consulted twice for every statement, once
// by the producer before the Statement is built and once by the consumer
// right before the write, so a filter change made while statements are
// queued takes effect for those statements too. Readers may observe a
// stale threshold for a short window; nothing on the emission path locks.
//
// Field is a structured key/value pair. Numeric kinds, bools, times and
// durations are stored inline so they never escape to the heap; Any is
// the fallback for arbitrary values.
package core
