package cmd

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tychoish/lazy"
	"github.com/tychoish/lazy/ers"
)

var exampleForRangeCmd = `
print 0 through 4:

  lz range 5

count down by two, comma separated (use -- before negative numbers):

  lz range -d , -- 10 0 -2

quarters as json:

  lz range --float -o json 0 1 0.25
`

func newRangeCmd(opts *rootOpts) *cobra.Command {
	var float bool

	cmd := &cobra.Command{
		Use:   "range [START] END [STEP]",
		Short: "print the arithmetic progression from START up to END",
		Long: `range prints START, START+STEP, START+2*STEP... stopping before the
first value that reaches or passes END. START defaults to 0 and STEP
to 1; a negative STEP counts down.`,
		Example: exampleForRangeCmd,
		Args:    cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if float {
				return runRange(cmd.OutOrStdout(), args, opts, parseFloat)
			}
			return runRange(cmd.OutOrStdout(), args, opts, parseInt)
		},
	}

	cmd.Flags().BoolVar(&float, "float", false, "parse the arguments as floating point numbers")
	return cmd
}

func parseInt(in string) (int64, error)     { return strconv.ParseInt(in, 10, 64) }
func parseFloat(in string) (float64, error) { return strconv.ParseFloat(in, 64) }

func runRange[T lazy.Number](out io.Writer, args []string, opts *rootOpts, parse func(string) (T, error)) error {
	values := make([]T, len(args))
	for idx, arg := range args {
		val, err := parse(arg)
		if err != nil {
			return ers.Wrapf(ers.Classify(err, ers.ErrInvalidArgument), "argument %d", idx+1)
		}
		values[idx] = val
	}

	var start, end, step T = 0, 0, 1
	switch len(values) {
	case 1:
		end = values[0]
	case 2:
		start, end = values[0], values[1]
	default:
		start, end, step = values[0], values[1], values[2]
	}

	v, err := lazy.Range(start, end, step)
	if err != nil {
		return err
	}
	return printView(out, v, opts)
}
