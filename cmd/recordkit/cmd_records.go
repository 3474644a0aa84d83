package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRecordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "List declared records and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range a.registry.Names() {
				rec, err := a.registry.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, rec.Name())
				for _, f := range rec.Plan().Fields() {
					fmt.Fprintf(w, "  %s\t%s\n", f.Name, f.Spec)
				}
			}
			return w.Flush()
		},
	}
}
