// recordkit validates JSON payloads against records declared in a YAML schema.
//
// Usage:
//
//	recordkit records  --schema=records.yaml
//	recordkit validate --schema=records.yaml Person payload.json
//	recordkit serve    --schema=records.yaml
//
// Every flag of the root command may also be set in the environment with
// the RECORDKIT_ prefix, for example RECORDKIT_SCHEMA or RECORDKIT_HTTP_ADDR.
package main

import (
	"errors"
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidPayload) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
