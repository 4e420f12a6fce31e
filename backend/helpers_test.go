package backend

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/formatter"
	"github.com/philipp01105/asynclog/writer"
)

// memSink collects formatted statements in memory. Every clone of a
// memWriter appends to the same sink.
type memSink struct {
	mu     sync.Mutex
	lines  []string
	closes int
	syncs  int

	// failOn makes writes containing this text fail.
	failOn string
	// gate, when set, blocks every write until it is closed; entered
	// receives once per write that reached the gate.
	gate    chan struct{}
	entered chan struct{}
}

type memWriter struct {
	sink  *memSink
	color bool
}

func newMemWriter() (*memSink, memWriter) {
	s := &memSink{}
	return s, memWriter{sink: s}
}

func (w memWriter) Write(p []byte) (int, error) {
	s := w.sink
	if s.gate != nil {
		select {
		case s.entered <- struct{}{}:
		default:
		}
		<-s.gate
	}
	if s.failOn != "" && strings.Contains(string(p), s.failOn) {
		return 0, errors.New("disk full")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, string(p))
	return len(p), nil
}

func (w memWriter) UseColor() bool        { return w.color }
func (w memWriter) Clone() writer.Writer { return w }

func (w memWriter) Close() error {
	w.sink.mu.Lock()
	defer w.sink.mu.Unlock()
	w.sink.closes++
	return nil
}

func (w memWriter) Sync() error {
	w.sink.mu.Lock()
	defer w.sink.mu.Unlock()
	w.sink.syncs++
	return nil
}

func (s *memSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// plainFormatter is a formatter.Formatter rendering "LEVEL message\n".
var plainFormatter formatter.Formatter = formatter.NewTextFormatter(formatter.Config{TimestampFormat: "-"})

func stmt(level core.Level, msg string) core.Statement {
	return core.NewStatement(time.Now(), level, msg, nil, nil)
}

// setLevel changes the process-wide filter for the duration of a test.
func setLevel(t *testing.T, l core.Level) {
	t.Helper()
	prev := core.MaxLevel()
	core.SetMaxLevel(l)
	t.Cleanup(func() { core.SetMaxLevel(prev) })
}

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt := NewRuntime(context.Background())
	t.Cleanup(func() { _ = rt.Shutdown() })
	return rt
}

func newTestBackend(t *testing.T, w writer.Writer, opts ...Option) *GoBackend {
	t.Helper()
	opts = append([]Option{WithDiagnostics(zap.NewNop())}, opts...)
	return FromRuntime(newTestRuntime(t), w, opts...)
}

// requireFatal asserts that fn panics with a *FatalError wrapping target.
func requireFatal(t *testing.T, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a panic")
	fe, ok := recovered.(*FatalError)
	require.True(t, ok, "expected *FatalError, got %T: %v", recovered, recovered)
	require.ErrorIs(t, fe, target)
}

func waitDone(t *testing.T, w *Worker) {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

// messages strips the "- [LEVEL] " prefix of plainFormatter output.
func messages(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		l = strings.TrimSuffix(l, "\n")
		if j := strings.Index(l, "] "); j >= 0 {
			l = l[j+2:]
		}
		out[i] = l
	}
	return out
}
