// Package cmd implements the lz command line tool, which prints
// lazily generated sequences.
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tychoish/lazy"
	"github.com/tychoish/lazy/ers"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var supportedFormats = []string{formatText, formatJSON, formatYAML}

var longRootCmdDescription = `lz prints lazily generated sequences: arithmetic ranges and repeated
values. Sequences are materialized sequentially, or in parallel with
--parallel, and printed as delimited text, json or yaml.

Every persistent flag may also be set with an LZ_ environment
variable (for example LZ_DELIMITER=,) or in a config file.
`

// rootOpts holds the resolved values of the persistent flags.
type rootOpts struct {
	cfgFile   string
	delimiter string
	format    string
	parallel  bool
	workers   int
	debug     bool

	logger *logrus.Logger
}

// NewRootCmd builds the lz command tree. Each call returns an
// independent tree with its own configuration.
func NewRootCmd() *cobra.Command {
	conf := viper.New()
	conf.SetEnvPrefix("lz")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "lz",
		Short:         "Print lazily generated sequences.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(conf, cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (yaml or json) with defaults for the flags")
	flags.StringP("delimiter", "d", " ", "separator between values in text output")
	flags.StringP("format", "o", formatText, fmt.Sprintf("output format, one of %v", supportedFormats))
	flags.Bool("parallel", false, "materialize the sequence with parallel workers")
	flags.Int("workers", 0, "number of parallel workers, 0 uses one per CPU")
	flags.Bool("debug", false, "turn on debug logging")
	if err := conf.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}

	rootCmd.AddCommand(newRangeCmd(opts), newRepeatCmd(opts), newVersionCmd(opts))
	return rootCmd
}

// Execute runs the command tree with the process arguments, and
// exits non-zero on error. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("lz-%s: %v", Version, err)
		os.Exit(1)
	}
}

func (o *rootOpts) load(conf *viper.Viper, logOut io.Writer) error {
	if o.cfgFile != "" {
		conf.SetConfigFile(o.cfgFile)
		if err := conf.ReadInConfig(); err != nil {
			return ers.Wrapf(err, "reading config %q", o.cfgFile)
		}
	}

	o.delimiter = conf.GetString("delimiter")
	o.format = conf.GetString("format")
	o.parallel = conf.GetBool("parallel")
	o.workers = conf.GetInt("workers")
	o.debug = conf.GetBool("debug")

	if !slices.Contains(supportedFormats, o.format) {
		return ers.Wrapf(ers.ErrInvalidArgument, "format %q is not one of %v", o.format, supportedFormats)
	}
	if o.workers < 0 {
		return ers.Wrapf(ers.ErrInvalidArgument, "%d workers", o.workers)
	}

	o.logger = logrus.New()
	o.logger.SetOutput(logOut)
	o.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if o.debug {
		o.logger.SetLevel(logrus.DebugLevel)
	}
	o.logger.WithFields(logrus.Fields{
		"format":   o.format,
		"parallel": o.parallel,
		"workers":  o.workers,
		"config":   conf.ConfigFileUsed(),
	}).Debug("resolved options")

	return nil
}

func (o *rootOpts) materializeOptions() []lazy.OptionProvider[*lazy.MaterializeConf] {
	opts := []lazy.OptionProvider[*lazy.MaterializeConf]{lazy.WithLogger(o.logger)}
	if o.parallel {
		opts = append(opts, lazy.WithParallel(o.workers))
	}
	return opts
}
