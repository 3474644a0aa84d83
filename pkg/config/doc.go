// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Without options Load reads an optional .env from the working directory.
// WithEnvFiles names files that must exist; WithPrefix scopes variable names.
// Nested structs are parsed recursively, so a service config can embed the
// configs exported by other packages (httpserver.Config, for example).
//
// Failures wrap ErrParsingConfig or ErrLoadingEnvFile.
package config
