// Package logger is the producer side of asynclog and the package most
// programs import.
//
// A Logger owns one worker handle. Each accepted call is checked against
// the process-wide filter, turned into a statement and queued; a single
// background goroutine per worker formats and writes it. Calls block only
// when that worker's queue (16 statements) is full.
//
// The package initializes a default Logger (text format to stderr) on
// its own runtime in init(). The package-level functions delegate to it:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// Programs that manage their own lifetime create a runtime, carry it in
// a context and build loggers on it:
//
//	rt := backend.NewRuntime(ctx)
//	defer rt.Shutdown()
//	log := logger.New(backend.WithRuntime(ctx, rt), fileWriter)
//	defer log.Close()
//
// The filter is global: SetLevel affects every Logger, and statements
// already queued are checked again when they are dequeued.
//
// NewSlogHandler exposes a Logger as a slog.Handler, so code written
// against log/slog logs through the same pipeline.
package logger
