package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/pkg/clientip"
	"github.com/dmitrymomot/recordkit/pkg/config"
	"github.com/dmitrymomot/recordkit/pkg/file"
	"github.com/dmitrymomot/recordkit/pkg/i18n"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/requestid"
	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/schemafile"
)

var errNoSchema = errors.New("no schema file: set --schema or RECORDKIT_SCHEMA")

// app is the state shared by subcommands, prepared before any of them runs.
type app struct {
	cfg        appConfig
	envFiles   []string
	log        *slog.Logger
	registry   *schema.Registry
	translator *i18n.Translator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "recordkit",
		Short:         "Validate and normalize records declared in a YAML schema",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("schema", "", "path to the records YAML file")
	flags.String("lang", "", "language of error messages (en, ru)")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-format", "", "text or json")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load before reading the environment")

	root.AddCommand(newRecordsCmd(a), newValidateCmd(a), newServeCmd(a))
	return root
}

// setup loads the environment, applies flag overrides and opens the schema.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.cfg, config.WithPrefix(envPrefix), config.WithEnvFiles(a.envFiles...)); err != nil {
		return err
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"schema":     &a.cfg.Schema,
		"lang":       &a.cfg.Lang,
		"log-level":  &a.cfg.Log.Level,
		"log-format": &a.cfg.Log.Format,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	logOpts, err := a.cfg.Log.Options()
	if err != nil {
		return err
	}
	a.log = logger.New(append(logOpts,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithService("recordkit"),
		logger.WithContextExtractors(requestid.LogExtractor(), clientip.LogExtractor()),
	)...)

	a.translator, err = i18n.NewTranslator(context.Background(), i18n.BuiltinAdapter(),
		i18n.WithLogger(a.log),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	if a.cfg.Schema == "" {
		return errNoSchema
	}
	a.registry, err = a.loadSchema(cmd.Context())
	if err != nil {
		return err
	}
	a.log.Debug("schema loaded", "location", a.cfg.Schema, "records", a.registry.Names())
	return nil
}

// loadSchema reads the schema from a local path or an s3:// location.
func (a *app) loadSchema(ctx context.Context) (*schema.Registry, error) {
	rc, err := file.Open(ctx, a.cfg.Schema, file.WithS3Config(a.cfg.S3))
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer rc.Close()

	reg, err := schemafile.Load(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.Schema, err)
	}
	return reg, nil
}

// lang is the supported language closest to the configured one.
func (a *app) lang() string {
	return a.translator.Negotiate(a.cfg.Lang)
}
