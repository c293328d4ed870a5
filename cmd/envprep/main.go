package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazz-dev/envprep/internal/config"
	"github.com/hazz-dev/envprep/internal/version"
)

var (
	cfgFile string
	noColor bool
	verbose bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "envprep",
		Short:        "Pre-flight environment checker for the Chatterbox TTS setup",
		Long:         "envprep verifies the host is ready for the Chatterbox TTS setup flow:\nPython version, pip, virtual-environment isolation, disk space, internet\nreachability, and optional GPU availability.",
		SilenceUsage: true,
		RunE:         runCheckCmd,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file path (optional)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug details to stderr")

	root.AddCommand(versionCmd())
	root.AddCommand(checkCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("envprep %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run all environment checks (same as running envprep with no arguments)",
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	return runChecks(cmd.OutOrStdout(), cfg, noColor, verbose)
}
