package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/liftoff/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("liftoff %s (%s, %s)\n", buildinfo.Version, buildinfo.ShortCommit(), buildinfo.Branch)
	},
}
