package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles loads the given .env files instead of the default .env.
// Unlike the default file, these must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.files = append(o.files, files...) }
}

// WithPrefix requires every variable name to carry prefix, e.g. "RECORDKIT_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load fills v from environment variables according to its env tags.
//
// Values from .env files never override variables already present in the
// process environment.
//
//	type Config struct {
//		Schema   string `env:"RECORDKIT_SCHEMA"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.files) == 0 {
		// the default .env is optional
		_ = godotenv.Load()
	} else if err := godotenv.Load(o.files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
