package cmd

import (
	"github.com/katalvlaran/strpart/partition"
	"github.com/katalvlaran/strpart/segment"
	"github.com/spf13/cobra"
)

type splitOptions struct {
	minPart  int
	maxParts int
	runes    bool
	memo     bool
	output   string
}

func newSplitCmd(root *rootOptions) *cobra.Command {
	opts := &splitOptions{}

	c := &cobra.Command{
		Use:   "split <string>",
		Short: "Print every segmentation of a string",
		Long: `Prints every way to cut <string> into ordered pieces of at least --min
characters, the whole string first.

Examples:
  strpart split asdfqwerzx --min 4
  strpart split "żółw" --min 2 --runes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, root, opts, args[0])
		},
	}

	c.Flags().IntVarP(&opts.minPart, "min", "m", 1, "minimum piece length")
	c.Flags().IntVar(&opts.maxParts, "max-parts", 0, "keep only segmentations with at most this many pieces (0 = no limit)")
	c.Flags().BoolVar(&opts.runes, "runes", false, "measure lengths in Unicode code points instead of bytes")
	c.Flags().BoolVar(&opts.memo, "memo", false, "memoise partition tails while generating")
	c.Flags().StringVarP(&opts.output, "output", "o", formatJSON, "output format: json|yaml")

	return c
}

func runSplit(cmd *cobra.Command, root *rootOptions, opts *splitOptions, s string) error {
	unit := segment.Bytes
	if opts.runes {
		unit = segment.Runes
	}
	root.logger.Debug("splitting string",
		"length", len(s), "min", opts.minPart, "unit", unit.String(), "max_parts", opts.maxParts)

	segs, err := segment.Process(s, opts.minPart,
		segment.WithUnit(unit),
		segment.WithPartitionOptions(
			partition.WithMemo(opts.memo),
			partition.WithMaxParts(opts.maxParts),
		),
	)
	if err != nil {
		return err
	}
	root.logger.Debug("segmentations generated", "count", len(segs))

	return writeItems(cmd.OutOrStdout(), opts.output, segs)
}
