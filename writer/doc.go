// Package writer provides the sinks an asynclog worker writes to.
//
// A Writer receives one fully formatted statement per Write call. Writers
// are handed out as templates: a backend calls Clone for every worker it
// spawns. Every built-in writer keeps its destination in a shared,
// reference-counted handle guarded by a mutex, so a clone writes to the
// same file descriptor as the original and concurrent writes from several
// workers never interleave. The destination is closed when the last clone
// is closed.
//
// Built-in writers:
//
//   - FileWriter appends to a single file.
//   - RotatingWriter appends to a file rotated by size and age
//     (gopkg.in/natefinch/lumberjack.v2).
//   - ConsoleWriter writes to stdout, stderr or any io.Writer and is the
//     only writer that may ask for color.
//   - MultiWriter fans one statement out to several writers.
//
// UseColor is a static property of a writer: it is decided when the
// writer is constructed and never changes afterwards.
package writer
