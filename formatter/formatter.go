package formatter

import (
	"bytes"

	"github.com/philipp01105/asynclog/core"
)

// Formatter defines the interface for statement formatters
type Formatter interface {
	// Format appends the rendered statement, newline included, to buf.
	// color reports whether the destination writer wants ANSI color.
	Format(buf *bytes.Buffer, stmt *core.Statement, color bool)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}
