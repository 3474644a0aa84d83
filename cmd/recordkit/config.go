package main

import (
	"github.com/dmitrymomot/recordkit/pkg/binder"
	"github.com/dmitrymomot/recordkit/pkg/file"
	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
)

// envPrefix namespaces every variable read by appConfig.
const envPrefix = "RECORDKIT_"

type appConfig struct {
	Schema      string `env:"SCHEMA"`
	Lang        string `env:"LANG" envDefault:"en"`
	MaxBodySize int64  `env:"MAX_BODY_SIZE"`
	Log         logger.Config
	HTTP        httpserver.Config
	S3          file.S3Config
}

func (c appConfig) maxBodySize() int64 {
	if c.MaxBodySize > 0 {
		return c.MaxBodySize
	}
	return binder.DefaultMaxJSONSize
}
