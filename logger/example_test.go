package logger_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/philipp01105/asynclog/backend"
	"github.com/philipp01105/asynclog/formatter"
	"github.com/philipp01105/asynclog/logger"
	"github.com/philipp01105/asynclog/writer"
)

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Info("Application started")
	logger.Info("User login",
		logger.String("username", "alice"),
		logger.Int("user_id", 123),
	)
	logger.Flush()
}

// Build a Logger on a runtime carried by a context.
func ExampleNew() {
	ctx := context.Background()
	rt := backend.NewRuntime(ctx)
	defer rt.Shutdown()

	w := writer.NewConsoleWriter(writer.ConsoleConfig{Writer: os.Stdout, Color: writer.ColorNever})
	log := logger.New(backend.WithRuntime(ctx, rt), w,
		backend.WithFormatter(formatter.NewTextFormatter(formatter.Config{TimestampFormat: "-"})),
	)
	defer log.Close()

	log.Info("ready", logger.Int("port", 8080))
	log.Flush()
	// Output:
	// - [INFO] ready port=8080
}

// Use With to create a child logger with persistent context fields.
func ExampleLogger_With() {
	rt := backend.NewRuntime(context.Background())
	defer rt.Shutdown()

	w := writer.NewConsoleWriter(writer.ConsoleConfig{Writer: os.Stdout, Color: writer.ColorNever})
	log := logger.NewWithRuntime(rt, w,
		backend.WithFormatter(formatter.NewTextFormatter(formatter.Config{TimestampFormat: "-"})),
	)

	reqLog := log.With(
		logger.String("request_id", "req-12345"),
		logger.String("method", "GET"),
	)
	reqLog.Info("Request completed", logger.Int("status", 200))

	reqLog.Close()
	log.Close()
	// Output:
	// - [INFO] Request completed request_id=req-12345 method=GET status=200
}

// Route log/slog through an asynclog pipeline.
func ExampleNewSlogHandler() {
	rt := backend.NewRuntime(context.Background())
	defer rt.Shutdown()

	w := writer.NewConsoleWriter(writer.ConsoleConfig{Writer: os.Stdout, Color: writer.ColorNever})
	log := logger.NewWithRuntime(rt, w,
		backend.WithFormatter(formatter.NewJSONFormatter(formatter.Config{TimestampFormat: "-"})),
	)
	defer log.Close()

	slog.New(logger.NewSlogHandler(log)).Warn("slow query", "ms", 250)
	log.Flush()
	// Output:
	// {"time":"-","level":"WARN","message":"slow query","ms":250}
}
