package formatter

import (
	"bytes"
	"math"
	"strconv"
	"time"

	"github.com/philipp01105/asynclog/core"
)

// JSONFormatter formats statements as one JSON object per line
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format writes the statement as JSON into buf. JSON output never carries
// color escapes, so color is ignored.
func (f *JSONFormatter) Format(buf *bytes.Buffer, stmt *core.Statement, _ bool) {
	buf.WriteString(`{"time":"`)
	buf.Write(stmt.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(`","level":"`)
	buf.WriteString(stmt.Level.String())
	buf.WriteString(`","message":"`)
	appendJSONString(buf, stmt.Message)
	buf.WriteByte('"')

	if f.IncludeCaller && stmt.Caller.Defined {
		buf.WriteString(`,"caller":{"file":"`)
		appendJSONString(buf, stmt.Caller.ShortFile)
		buf.WriteString(`","line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(stmt.Caller.Line), 10))
		if stmt.Caller.Function != "" {
			buf.WriteString(`,"function":"`)
			appendJSONString(buf, stmt.Caller.Function)
			buf.WriteByte('"')
		}
		buf.WriteByte('}')
	}

	for _, field := range stmt.Fields {
		buf.WriteString(`,"`)
		appendJSONString(buf, field.Key)
		buf.WriteString(`":`)
		appendJSONFieldValue(buf, field)
	}

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONFieldValue writes a JSON-encoded field value to the buffer
func appendJSONFieldValue(buf *bytes.Buffer, field core.Field) {
	switch field.Type {
	case core.StringType, core.ErrorType:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	case core.IntType, core.Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.Uint64Type:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(field.Int64), 10))
	case core.Float64Type:
		if math.IsNaN(field.Float64) || math.IsInf(field.Float64, 0) {
			buf.WriteByte('"')
			buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), field.Float64, 'f', -1, 64))
			buf.WriteByte('"')
			return
		}
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), field.Float64, 'f', -1, 64))
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Int64 == 1))
	case core.TimeType:
		buf.WriteByte('"')
		buf.Write(time.Unix(0, field.Int64).AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case core.DurationType:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	default:
		buf.WriteByte('"')
		appendJSONString(buf, field.String())
		buf.WriteByte('"')
	}
}
