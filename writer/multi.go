package writer

import (
	"go.uber.org/multierr"
)

// MultiWriter sends every statement to several writers.
type MultiWriter struct {
	writers []Writer
	color   bool
}

// NewMultiWriter creates a fan-out writer. It asks for color only when
// every child does, so no child ever receives escape codes it did not
// want.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	color := len(writers) > 0
	for _, w := range writers {
		if !w.UseColor() {
			color = false
		}
	}
	return &MultiWriter{writers: writers, color: color}
}

// Write writes p to every child. A failing child does not stop the
// others; all errors are combined.
func (m *MultiWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range m.writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	return len(p), err
}

// UseColor reports whether every child asked for color.
func (m *MultiWriter) UseColor() bool {
	return m.color
}

// Sync syncs every child implementing Syncer.
func (m *MultiWriter) Sync() error {
	var err error
	for _, w := range m.writers {
		if s, ok := w.(Syncer); ok {
			err = multierr.Append(err, s.Sync())
		}
	}
	return err
}

// Clone clones every child.
func (m *MultiWriter) Clone() Writer {
	clones := make([]Writer, len(m.writers))
	for i, w := range m.writers {
		clones[i] = w.Clone()
	}
	return &MultiWriter{writers: clones, color: m.color}
}

// Close closes every child.
func (m *MultiWriter) Close() error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, w.Close())
	}
	return err
}
