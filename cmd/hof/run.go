package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-hof/internal/render"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [example...]",
		Short: "Run the named examples, or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			opts.log.Debug("running examples", "requested", len(args), "format", string(format))
			results, err := opts.tutorial.Run(args...)
			if err != nil {
				return fmt.Errorf("failed to run examples: %w", err)
			}
			opts.log.Debug("examples finished", "count", len(results))

			return render.Results(cmd.OutOrStdout(), format, results)
		},
	}
}
