package writer

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorMode selects how a ConsoleWriter decides on color.
type ColorMode int

const (
	// ColorAuto enables color when the destination is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces color
	ColorAlways
	// ColorNever disables color
	ColorNever
)

// ConsoleConfig holds configuration for ConsoleWriter
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Color decides whether the writer asks for color (default: ColorAuto)
	Color ColorMode
}

// ConsoleWriter writes statements to a terminal or any io.Writer. The
// destination is never closed by the writer.
type ConsoleWriter struct {
	ref
	color bool
}

// NewConsoleWriter creates a console writer. The color decision is made
// here and stays fixed for the writer and all of its clones.
func NewConsoleWriter(cfg ConsoleConfig) *ConsoleWriter {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	return &ConsoleWriter{
		ref:   ref{h: newHandle(cfg.Writer, nil, nil)},
		color: useColor(cfg.Writer, cfg.Color),
	}
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// UseColor reports the color decision made at construction.
func (w *ConsoleWriter) UseColor() bool {
	return w.color
}

// Clone returns a ConsoleWriter sharing the destination and its lock.
func (w *ConsoleWriter) Clone() Writer {
	return &ConsoleWriter{ref: ref{h: w.h.acquire()}, color: w.color}
}
