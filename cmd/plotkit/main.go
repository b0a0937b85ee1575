// Command plotkit exposes the plotkit primitives on the command line:
// it prints ticks, maps values through scales, generates SVG path data
// and renders charts described in TOML files.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version number, e.g. 1.0.1
	Version = "dev"
	// FullVersion is the semantic version number + git commit hash
	FullVersion string
	// Build is the build date of plotkit
	Build string
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:   "plotkit",
		Short: "Chart primitives on the command line",
		Long: `plotkit computes axis ticks, maps values through linear, log, time and
discrete scales, generates SVG path data for curves and renders charts
described in TOML files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newTicksCmd(),
		newScaleCmd(),
		newPathCmd(),
		newRenderCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the plotkit version number",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "plotkit "+Version)
			if FullVersion != "" {
				fmt.Fprintln(out, "Full Version: ", FullVersion)
			}
			if Build != "" {
				fmt.Fprintln(out, "Build Time: ", Build)
			}
		},
	}
}
