package main

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-hof/internal/demo"
	"github.com/hasbyte1/go-hof/internal/render"
)

const (
	envFormat  = "HOF_FORMAT"
	envVerbose = "HOF_VERBOSE"
)

type options struct {
	format  string
	verbose bool

	log      *slog.Logger
	tutorial *demo.Registry
}

func newRootCmd() *cobra.Command {
	opts := &options{tutorial: demo.Tutorial()}
	verbose, _ := strconv.ParseBool(os.Getenv(envVerbose))

	cmd := &cobra.Command{
		Use:           "hof",
		Short:         "Run higher-order function examples",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.log = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}

	defaultFormat := os.Getenv(envFormat)
	if defaultFormat == "" {
		defaultFormat = string(render.FormatText)
	}
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", defaultFormat, "Output format (text, json, yaml, table)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", verbose, "Enable verbose logging")

	cmd.AddCommand(newListCmd(opts), newRunCmd(opts))
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
	}))
}
