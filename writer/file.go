package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileConfig holds configuration for FileWriter
type FileConfig struct {
	// Path is the log file; parent directories are created on demand
	Path string
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
	// DirPerm is the mode used for created directories (default: 0755)
	DirPerm os.FileMode
}

func applyFileDefaults(cfg *FileConfig) {
	if cfg.Perm == 0 {
		cfg.Perm = 0o644
	}
	if cfg.DirPerm == 0 {
		cfg.DirPerm = 0o755
	}
}

// FileWriter appends statements to a file. All clones share one *os.File
// and one lock.
type FileWriter struct {
	ref
	path string
}

// NewFileWriter opens (or creates) cfg.Path for appending.
func NewFileWriter(cfg FileConfig) (*FileWriter, error) {
	if cfg.Path == "" {
		return nil, errors.New("file path is required")
	}
	applyFileDefaults(&cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.Path), cfg.DirPerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &FileWriter{
		ref:  ref{h: newHandle(file, file.Close, file.Sync)},
		path: cfg.Path,
	}, nil
}

// Path returns the file the writer appends to.
func (w *FileWriter) Path() string {
	return w.path
}

// UseColor is always false: files never receive escape codes.
func (w *FileWriter) UseColor() bool {
	return false
}

// Clone returns a FileWriter sharing the same file handle and lock.
func (w *FileWriter) Clone() Writer {
	return &FileWriter{ref: ref{h: w.h.acquire()}, path: w.path}
}
