package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile  string
	hostRoot string
	verbose  bool
	jsonLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "liftoff",
	Short: "Attach-sequence harness for the liftoff runtime module",
	Long: `Liftoff is an in-process runtime modification module. This harness
drives the same attach sequence the module runs inside a host process:
probe the environment, then walk the ordered, severity-gated
initialization registry.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "profile file (default: liftoff.yaml)")
	rootCmd.PersistentFlags().StringVar(&hostRoot, "host-root", "", "host install root directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "JSON log output")

	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(versionCmd)
}
