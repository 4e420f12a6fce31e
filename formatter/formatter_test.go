package formatter

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/asynclog/core"
)

func format(f Formatter, stmt *core.Statement, color bool) string {
	var buf bytes.Buffer
	f.Format(&buf, stmt, color)
	return buf.String()
}

func TestTextFormatter_Basic(t *testing.T) {
	t.Parallel()

	f := NewTextFormatter(Config{})
	stmt := &core.Statement{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
	}

	assert.Equal(t, "2026-02-18T13:00:00Z [INFO] test message\n", format(f, stmt, false))
}

func TestTextFormatter_Levels(t *testing.T) {
	t.Parallel()

	f := NewTextFormatter(Config{TimestampFormat: "15:04"})
	tcs := map[core.Level]string{
		core.TraceLevel: "[TRACE]",
		core.DebugLevel: "[DEBUG]",
		core.WarnLevel:  "[WARN]",
		core.ErrorLevel: "[ERROR]",
		core.PanicLevel: "[PANIC]",
		core.OffLevel:   "[UNKNOWN]",
	}

	for level, want := range tcs {
		out := format(f, &core.Statement{Level: level, Message: "m"}, false)
		assert.Contains(t, out, want)
	}
}

func TestTextFormatter_WithFields(t *testing.T) {
	t.Parallel()

	f := NewTextFormatter(Config{})
	stmt := &core.Statement{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Fields: []core.Field{
			{Key: "key1", Type: core.StringType, Str: "value1"},
			{Key: "key2", Type: core.IntType, Int64: 42},
		},
	}

	out := format(f, stmt, false)
	assert.Contains(t, out, " test key1=value1 key2=42\n")
}

func TestTextFormatter_WithCaller(t *testing.T) {
	t.Parallel()

	f := NewTextFormatter(Config{IncludeCaller: true})
	stmt := &core.Statement{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	assert.Contains(t, format(f, stmt, false), "[file.go:123] test")

	stmt.Caller = core.CallerInfo{}
	assert.NotContains(t, format(f, stmt, false), "[file.go")
}

func TestTextFormatter_Color(t *testing.T) {
	t.Parallel()

	f := NewTextFormatter(Config{})
	stmt := &core.Statement{Time: time.Now(), Level: core.ErrorLevel, Message: "boom"}

	colored := format(f, stmt, true)
	plain := format(f, stmt, false)

	assert.Contains(t, colored, "\x1b[31mERROR\x1b[0m")
	assert.NotContains(t, plain, "\x1b[")
}

func TestJSONFormatter_Valid(t *testing.T) {
	t.Parallel()

	f := NewJSONFormatter(Config{IncludeCaller: true})
	stmt := &core.Statement{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Message: "quote \" and\nnewline",
		Fields: []core.Field{
			{Key: "status", Type: core.Int64Type, Int64: 200},
			{Key: "ok", Type: core.BoolType, Int64: 1},
			{Key: "ratio", Type: core.Float64Type, Float64: 0.5},
			{Key: "nan", Type: core.Float64Type, Float64: math.NaN()},
			{Key: "err", Type: core.ErrorType, Str: "bad"},
			{Key: "any", Type: core.AnyType, Any: struct{ A int }{1}},
		},
		Caller: core.CallerInfo{ShortFile: "main.go", Line: 7, Function: "main.run", Defined: true},
	}

	out := format(f, stmt, true)
	require.True(t, bytes.HasSuffix([]byte(out), []byte("}\n")))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "WARN", decoded["level"])
	assert.Equal(t, "quote \" and\nnewline", decoded["message"])
	assert.InDelta(t, 200, decoded["status"], 0)
	assert.Equal(t, true, decoded["ok"])
	assert.Equal(t, "NaN", decoded["nan"])
	assert.Equal(t, "bad", decoded["err"])
	assert.Equal(t, "{1}", decoded["any"])
	assert.Equal(t, map[string]any{"file": "main.go", "line": float64(7), "function": "main.run"}, decoded["caller"])
	assert.NotContains(t, out, "\x1b[")
}

func TestAppendJSONString_ControlChars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	appendJSONString(&buf, "a\x01b\\c\t")
	assert.Equal(t, `a\u0001b\\c\t`, buf.String())
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	stmt := &core.Statement{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "benchmark message",
		Fields:  []core.Field{{Key: "user", Type: core.StringType, Str: "alice"}},
	}
	var buf bytes.Buffer

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.Format(&buf, stmt, false)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	stmt := &core.Statement{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "benchmark message",
		Fields:  []core.Field{{Key: "user", Type: core.StringType, Str: "alice"}},
	}
	var buf bytes.Buffer

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.Format(&buf, stmt, false)
	}
}
