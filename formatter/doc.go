// Package formatter renders a core.Statement into bytes.
//
// A Formatter appends one complete line, trailing newline included, to a
// caller-provided bytes.Buffer. The background worker owns a single buffer
// and reuses it for every statement, so formatting is allocation-free on
// the consumer side and the writer receives each statement as one Write
// call.
//
// TextFormatter produces "time [LEVEL] [file:line] message k=v ..." and
// wraps the level bracket in ANSI color when the target writer asks for
// color. JSONFormatter produces one JSON object per line and ignores the
// color flag. Both rely on Append-style functions (time.AppendFormat,
// strconv.AppendInt) instead of fmt.
package formatter
