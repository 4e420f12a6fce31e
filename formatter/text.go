package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/asynclog/core"
)

// TextFormatter formats statements as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings, indexed by level - TraceLevel
var levelBrackets = [...]string{
	" [TRACE] ",
	" [DEBUG] ",
	" [INFO] ",
	" [WARN] ",
	" [ERROR] ",
	" [FATAL] ",
	" [PANIC] ",
}

var levelColors = [...]string{
	" [\x1b[90mTRACE\x1b[0m] ",
	" [\x1b[36mDEBUG\x1b[0m] ",
	" [\x1b[32mINFO\x1b[0m] ",
	" [\x1b[33mWARN\x1b[0m] ",
	" [\x1b[31mERROR\x1b[0m] ",
	" [\x1b[35mFATAL\x1b[0m] ",
	" [\x1b[1;31mPANIC\x1b[0m] ",
}

func levelBracket(l core.Level, color bool) string {
	i := int(l) - int(core.TraceLevel)
	if i < 0 || i >= len(levelBrackets) {
		return " [UNKNOWN] "
	}
	if color {
		return levelColors[i]
	}
	return levelBrackets[i]
}

// Format writes the formatted statement into buf
func (f *TextFormatter) Format(buf *bytes.Buffer, stmt *core.Statement, color bool) {
	buf.Write(stmt.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(levelBracket(stmt.Level, color))

	if f.IncludeCaller && stmt.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(stmt.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(stmt.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(stmt.Message)

	for _, field := range stmt.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.Write(field.AppendValue(buf.AvailableBuffer()))
	}

	buf.WriteByte('\n')
}
