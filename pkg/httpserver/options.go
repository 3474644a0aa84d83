package httpserver

import (
	"fmt"
	"log/slog"
	"time"
)

// Option configures a Server. Constructors panic on invalid values.
type Option func(*config)

// WithAddr sets the listen address; "127.0.0.1:0" binds a random port.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty listen address")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	positive("read timeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	positive("read header timeout", d)
	return func(c *config) { c.readHeaderTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	positive("write timeout", d)
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout bounds keep-alive connections waiting for the next request.
func WithIdleTimeout(d time.Duration) Option {
	positive("idle timeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds how long in-flight requests may drain.
func WithShutdownTimeout(d time.Duration) Option {
	positive("shutdown timeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithLogger receives lifecycle events and net/http errors. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func positive(name string, d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver: %s must be positive, got %s", name, d))
	}
}
