package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/pkg/api"
	"github.com/dmitrymomot/recordkit/pkg/httpserver"
	"github.com/dmitrymomot/recordkit/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve record validation over HTTP",
		Long: `Starts an HTTP server exposing the declared records:

  GET  /healthz
  GET  /records
  GET  /records/{name}
  POST /records/{name}/validate

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}

			h := api.NewHandler(a.registry,
				api.WithTranslator(a.translator),
				api.WithLogger(a.log.With(logger.Component("api"))),
				api.WithMaxBodySize(a.cfg.maxBodySize()),
			)
			srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), h.Routes())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides RECORDKIT_HTTP_ADDR")
	return cmd
}
