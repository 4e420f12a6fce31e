package writer

import (
	"errors"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingConfig holds configuration for RotatingWriter
type RotatingConfig struct {
	// Filename is the active log file
	Filename string `yaml:"filename"`
	// MaxSizeMB is the size in megabytes that triggers rotation (default: 100)
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxAgeDays removes rotated files older than this (0 = keep)
	MaxAgeDays int `yaml:"max_age_days"`
	// MaxBackups is the number of rotated files to keep (0 = keep all)
	MaxBackups int `yaml:"max_backups"`
	// Compress gzips rotated files
	Compress bool `yaml:"compress"`
	// LocalTime uses local time in backup file names instead of UTC
	LocalTime bool `yaml:"local_time"`
}

// RotatingWriter appends statements to a file that is rotated by size and
// age. Clones share one lumberjack.Logger and one lock.
type RotatingWriter struct {
	ref
	lj *lumberjack.Logger
}

// NewRotatingWriter creates a rotating file writer. The file is opened
// lazily on the first write.
func NewRotatingWriter(cfg RotatingConfig) (*RotatingWriter, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filename is required")
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxAge:     cfg.MaxAgeDays,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	}

	return &RotatingWriter{
		ref: ref{h: newHandle(lj, lj.Close, nil)},
		lj:  lj,
	}, nil
}

// UseColor is always false.
func (w *RotatingWriter) UseColor() bool {
	return false
}

// Rotate closes the active file, renames it with a timestamp and opens a
// fresh one. It is serialized with writes.
func (w *RotatingWriter) Rotate() error {
	if w.closed.Load() {
		return ErrClosed
	}

	w.h.mu.Lock()
	defer w.h.mu.Unlock()

	if w.h.w == nil {
		return ErrClosed
	}
	return w.lj.Rotate()
}

// Clone returns a RotatingWriter sharing the same rotating file.
func (w *RotatingWriter) Clone() Writer {
	return &RotatingWriter{ref: ref{h: w.h.acquire()}, lj: w.lj}
}
