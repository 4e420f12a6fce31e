// Package benchmark compares the producer-side cost of asynclog with zap,
// log/slog, logrus and zerolog. It is a separate module so the library's
// go.mod does not carry the competitors.
//
//	cd benchmark && go test -bench=. -benchmem
//
// asynclog numbers measure the calling goroutine only; formatting and
// writing happen on the worker. Every asynclog benchmark flushes before
// it stops the timer, so queued work is included in the total.
package benchmark
