package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ex := range opts.tutorial.Examples() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", ex.Section, ex.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
