package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/philipp01105/asynclog/backend"
	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/formatter"
	"github.com/philipp01105/asynclog/writer"
)

// Environment variables read by FromEnv and Load.
const (
	EnvLevel  = "ASYNCLOG_LEVEL"
	EnvFormat = "ASYNCLOG_FORMAT"
	EnvFile   = "ASYNCLOG_FILE"
)

var (
	// ErrUnknownWriter indicates an output kind other than console, file
	// or rotating.
	ErrUnknownWriter = errors.New("unknown writer kind")
	// ErrUnknownFormat indicates a format other than text or json.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrUnknownColor indicates a color mode other than auto, always or
	// never.
	ErrUnknownColor = errors.New("unknown color mode")
)

// Output kinds.
const (
	KindConsole  = "console"
	KindFile     = "file"
	KindRotating = "rotating"
)

// Config describes one pipeline.
type Config struct {
	// Level is the initial process-wide filter (default: info)
	Level string `yaml:"level"`
	// Format is text or json (default: text)
	Format string `yaml:"format"`
	// TimestampFormat is a time layout (default: the formatter's)
	TimestampFormat string `yaml:"timestamp_format"`
	// Caller adds file:line to every statement
	Caller bool `yaml:"caller"`
	// DrainTimeout bounds the drain after runtime shutdown, e.g. "2s"
	DrainTimeout string `yaml:"drain_timeout"`
	// Outputs are written to in order (default: one console output)
	Outputs []Output `yaml:"outputs"`
}

// Output describes one destination.
type Output struct {
	// Kind is console, file or rotating
	Kind string `yaml:"kind"`
	// Stream is stderr or stdout, for console outputs (default: stderr)
	Stream string `yaml:"stream"`
	// Color is auto, always or never, for console outputs (default: auto)
	Color string `yaml:"color"`
	// Path is the file for file outputs
	Path string `yaml:"path"`
	// Rotation configures rotating outputs
	Rotation writer.RotatingConfig `yaml:"rotation"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if len(c.Outputs) == 0 {
		c.Outputs = []Output{{Kind: KindConsole}}
	}
	for i := range c.Outputs {
		o := &c.Outputs[i]
		if o.Kind == KindConsole && o.Stream == "" {
			o.Stream = "stderr"
		}
		if o.Kind == KindConsole && o.Color == "" {
			o.Color = "auto"
		}
	}
}

// Parse decodes YAML and fills in defaults. It does not read the
// environment.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv returns Default with environment overrides applied.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays the environment. ASYNCLOG_FILE replaces every output
// with a single file output.
func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvLevel); v != "" {
		c.Level = v
	}
	if v := getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := getenv(EnvFile); v != "" {
		c.Outputs = []Output{{Kind: KindFile, Path: v}}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := core.ParseLevel(c.Level); err != nil {
		return err
	}
	if _, err := c.formatter(); err != nil {
		return err
	}
	if _, err := c.drainTimeout(); err != nil {
		return err
	}
	for i, o := range c.Outputs {
		if err := o.validate(); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
	}
	return nil
}

func (o Output) validate() error {
	switch o.Kind {
	case KindConsole:
		if _, err := parseColor(o.Color); err != nil {
			return err
		}
		if _, err := o.stream(); err != nil {
			return err
		}
	case KindFile:
		if o.Path == "" {
			return errors.New("file output requires a path")
		}
	case KindRotating:
		if o.Rotation.Filename == "" {
			return errors.New("rotating output requires rotation.filename")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWriter, o.Kind)
	}
	return nil
}

// ParsedLevel returns Level as a core.Level.
func (c Config) ParsedLevel() (core.Level, error) {
	return core.ParseLevel(c.Level)
}

func (c Config) formatter() (formatter.Formatter, error) {
	fc := formatter.Config{
		IncludeCaller:   c.Caller,
		TimestampFormat: c.TimestampFormat,
	}
	switch strings.ToLower(c.Format) {
	case "text", "":
		return formatter.NewTextFormatter(fc), nil
	case "json":
		return formatter.NewJSONFormatter(fc), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
}

func (c Config) drainTimeout() (time.Duration, error) {
	if c.DrainTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.DrainTimeout)
	if err != nil {
		return 0, fmt.Errorf("drain_timeout: %w", err)
	}
	return d, nil
}

func parseColor(s string) (writer.ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return writer.ColorAuto, nil
	case "always":
		return writer.ColorAlways, nil
	case "never":
		return writer.ColorNever, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

func (o Output) stream() (*os.File, error) {
	switch strings.ToLower(o.Stream) {
	case "stderr", "":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return nil, fmt.Errorf("unknown console stream %q", o.Stream)
	}
}

// NewWriter opens every output. With more than one output the result is a
// writer.MultiWriter. On error, outputs already opened are closed.
func (c Config) NewWriter() (writer.Writer, error) {
	writers := make([]writer.Writer, 0, len(c.Outputs))
	for i, o := range c.Outputs {
		w, err := o.open()
		if err != nil {
			for _, opened := range writers {
				_ = opened.Close()
			}
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		writers = append(writers, w)
	}
	if len(writers) == 1 {
		return writers[0], nil
	}
	return writer.NewMultiWriter(writers...), nil
}

func (o Output) open() (writer.Writer, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	switch o.Kind {
	case KindConsole:
		color, _ := parseColor(o.Color)
		stream, _ := o.stream()
		return writer.NewConsoleWriter(writer.ConsoleConfig{Writer: stream, Color: color}), nil
	case KindFile:
		return writer.NewFileWriter(writer.FileConfig{Path: o.Path})
	default:
		return writer.NewRotatingWriter(o.Rotation)
	}
}

// BackendOptions returns the formatter and drain timeout as backend
// options.
func (c Config) BackendOptions() ([]backend.Option, error) {
	f, err := c.formatter()
	if err != nil {
		return nil, err
	}
	d, err := c.drainTimeout()
	if err != nil {
		return nil, err
	}
	return []backend.Option{backend.WithFormatter(f), backend.WithDrainTimeout(d)}, nil
}

// NewBackend sets the process-wide filter to Level, opens the outputs and
// binds a backend to rt. extra options are applied after the configured
// ones.
func (c Config) NewBackend(rt *backend.Runtime, extra ...backend.Option) (*backend.GoBackend, error) {
	level, err := c.ParsedLevel()
	if err != nil {
		return nil, err
	}
	opts, err := c.BackendOptions()
	if err != nil {
		return nil, err
	}
	w, err := c.NewWriter()
	if err != nil {
		return nil, err
	}
	core.SetMaxLevel(level)
	return backend.FromRuntime(rt, w, append(opts, extra...)...), nil
}
