package cmd

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/strpart/partition"
	"github.com/spf13/cobra"
)

type partitionsOptions struct {
	minPart  int
	maxParts int
	memo     bool
	output   string
}

func newPartitionsCmd(root *rootOptions) *cobra.Command {
	opts := &partitionsOptions{}

	c := &cobra.Command{
		Use:   "partitions <length>",
		Short: "Print every ordered partition of a length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseLength(args[0])
			if err != nil {
				return err
			}
			root.logger.Debug("generating partitions", "length", length, "min", opts.minPart)

			set, err := partition.Generate(length, opts.minPart,
				partition.WithMemo(opts.memo),
				partition.WithMaxParts(opts.maxParts),
			)
			if err != nil {
				return err
			}
			root.logger.Debug("partitions generated", "count", len(set))

			return writeItems(cmd.OutOrStdout(), opts.output, []partition.Partition(set))
		},
	}

	c.Flags().IntVarP(&opts.minPart, "min", "m", 1, "minimum part size")
	c.Flags().IntVar(&opts.maxParts, "max-parts", 0, "keep only partitions with at most this many parts (0 = no limit)")
	c.Flags().BoolVar(&opts.memo, "memo", false, "memoise partition tails while generating")
	c.Flags().StringVarP(&opts.output, "output", "o", formatJSON, "output format: json|yaml")

	return c
}

func newCountCmd(root *rootOptions) *cobra.Command {
	var minPart int

	c := &cobra.Command{
		Use:   "count <length>",
		Short: "Print how many partitions a length has, without generating them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseLength(args[0])
			if err != nil {
				return err
			}
			n, err := partition.Count(length, minPart)
			if err != nil {
				return err
			}
			root.logger.Debug("partitions counted", "length", length, "min", minPart, "count", n)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)

			return err
		},
	}
	c.Flags().IntVarP(&minPart, "min", "m", 1, "minimum part size")

	return c
}

// parseLength reads a decimal length argument.
func parseLength(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: length %q is not an integer", partition.ErrInvalidArgument, arg)
	}

	return n, nil
}
