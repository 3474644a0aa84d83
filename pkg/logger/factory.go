package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config is the environment form of the level and format options.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Options parses c into options for New.
func (c Config) Options() ([]Option, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return []Option{WithLevel(level), WithFormat(format)}, nil
}

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat panics on anything but FormatJSON or FormatText.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(c *config) { c.format = f }
}

// WithOutput replaces os.Stderr. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr attaches attrs to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithService is WithAttr(slog.String("service", name)) for a non-empty name.
func WithService(name string) Option {
	if name == "" {
		return func(*config) {}
	}
	return WithAttr(slog.String("service", name))
}

// WithContextExtractors adds attributes derived from the context of each
// *Context logging call. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name when it is set.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return func(*config) {}
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(key)
		return slog.Any(name, v), v != nil
	})
}

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
// The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logger: invalid level %q", s)
}

// ParseFormat accepts json and text in any case. The empty string is json.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatText:
		return f, nil
	}
	return FormatJSON, fmt.Errorf("logger: invalid format %q", s)
}

// New builds a logger writing JSON at info level to os.Stderr unless
// configured otherwise.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}

	var h slog.Handler
	hopts := &slog.HandlerOptions{Level: cfg.level}
	switch cfg.format {
	case FormatText:
		h = slog.NewTextHandler(cfg.output, hopts)
	default:
		h = slog.NewJSONHandler(cfg.output, hopts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(newContextHandler(h, cfg.extractors...))
}

// Nop discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
