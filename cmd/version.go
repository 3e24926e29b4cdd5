package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set with -ldflags "-X github.com/fitzmx6/portfolio/cmd.version=..."
var version = ""

func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the portfolio version and the go toolchain it was built with",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, goVersion := buildVersion()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s (%s)\n", v, goVersion)
		},
	}
	return cmd
}

// buildVersion prefers the linked version over the module version recorded
// in the binary
func buildVersion() (v, goVersion string) {
	v, goVersion = version, "unknown"
	info, ok := debug.ReadBuildInfo()
	if ok {
		goVersion = info.GoVersion
		if v == "" {
			v = info.Main.Version
		}
	}
	if v == "" {
		v = "devel"
	}
	return v, goVersion
}
