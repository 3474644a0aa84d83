package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/pkg/binder"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// errInvalidPayload is returned after the validation report has been printed.
var errInvalidPayload = errors.New("payload failed validation")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate RECORD [FILE|-]",
		Short: "Validate a JSON payload and print the normalized record",
		Long: `Reads one JSON object from FILE, or from stdin when FILE is omitted or "-",
and validates it against RECORD.

On success the normalized record is printed as JSON in field declaration order.
Otherwise every failed field is reported on stderr and the command exits with status 1.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("open payload: %w", err)
				}
				defer f.Close()
				in = f
			}

			return a.validate(cmd.OutOrStdout(), cmd.ErrOrStderr(), in, rec)
		},
	}
}

func (a *app) validate(stdout, stderr io.Writer, in io.Reader, rec *schema.Record) error {
	fields, err := binder.DecodeJSON(in, binder.WithMaxSize(a.cfg.maxBodySize()))
	if err != nil {
		return err
	}

	inst, err := schema.Validate(rec, fields)
	if verr := schema.ExtractValidationError(err); verr != nil {
		verr = a.translator.Localize(verr, a.lang())
		a.log.Debug("payload rejected", logger.Validation(verr))
		fmt.Fprintf(stderr, "%s: %d invalid field(s)\n", rec.Name(), len(verr.Errors))
		for _, fe := range verr.Errors {
			fmt.Fprintf(stderr, "  %s: %s\n", fe.Location, fe.Message)
		}
		return errInvalidPayload
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(inst)
}
