package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tychoish/lazy"
)

func newRepeatCmd(opts *rootOpts) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "repeat VALUE",
		Short:   "print a value a number of times",
		Example: "  lz repeat --count 3 -d , x",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lazy.RepeatN(args[0], count)
			if err != nil {
				return err
			}
			return printView(cmd.OutOrStdout(), v, opts)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of times to print the value")
	return cmd
}
