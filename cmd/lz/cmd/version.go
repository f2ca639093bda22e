package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time with
// -ldflags "-X github.com/tychoish/lazy/cmd/lz/cmd.Version=..."
var Version = "dev"

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

func newVersionCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show lz version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:   Version,
				GoVersion: runtime.Version(),
				Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
			}
			if opts.format == formatText {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "lz %s (%s %s)\n", info.Version, info.GoVersion, info.Platform)
				return err
			}
			return printStructured(cmd.OutOrStdout(), info, opts.format)
		},
	}
}
