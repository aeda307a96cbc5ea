// Package cmd holds the cobra command tree of the strpart CLI.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose   bool
	logFormat string

	logger *slog.Logger
}

// Execute runs the CLI against os.Args and the process streams.
func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		printError(os.Stderr, err)

		return err
	}

	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "strpart: %v\n", err)
}

// NewRootCmd builds the full command tree writing results to out and
// logs and errors to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "strpart",
		Short: "Enumerate string segmentations and length partitions",
		Long: `strpart lists every way to cut a string (or a bare length) into
ordered pieces that are each at least --min long.

Examples:
  strpart split asdfqwerzx --min 4          # one JSON array per line
  strpart split asdfqwerzx --min 4 -o yaml  # a single YAML document
  strpart partitions 10 --min 4
  strpart count 25 --min 4                  # 476`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(errOut, opts.logFormat, opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", logFormatText, "log format: text|json")

	root.AddCommand(
		newSplitCmd(opts),
		newPartitionsCmd(opts),
		newCountCmd(opts),
	)

	return root
}
