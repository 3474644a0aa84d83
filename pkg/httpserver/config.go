package httpserver

import "time"

// Config is the environment form of the server options. With the CLI's
// prefix the variables read as RECORDKIT_HTTP_ADDR and so on.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig builds a Server from cfg. Zero fields keep the defaults;
// opts are applied after cfg and win over it.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	var fromCfg []Option
	if cfg.Addr != "" {
		fromCfg = append(fromCfg, WithAddr(cfg.Addr))
	}
	timeouts := []struct {
		d   time.Duration
		opt func(time.Duration) Option
	}{
		{cfg.ReadTimeout, WithReadTimeout},
		{cfg.ReadHeaderTimeout, WithReadHeaderTimeout},
		{cfg.WriteTimeout, WithWriteTimeout},
		{cfg.IdleTimeout, WithIdleTimeout},
		{cfg.ShutdownTimeout, WithShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.d > 0 {
			fromCfg = append(fromCfg, t.opt(t.d))
		}
	}
	return New(append(fromCfg, opts...)...)
}
