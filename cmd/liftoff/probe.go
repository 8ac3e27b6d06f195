package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/liftoff/internal/adapters/filesystem"
	"github.com/felixgeelhaar/liftoff/internal/adapters/hostinfo"
	"github.com/felixgeelhaar/liftoff/internal/domain/hostident"
	"github.com/felixgeelhaar/liftoff/internal/domain/probe"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report the facts an attach pass would detect",
	Long: `Probe inspects the host installation without running any
initialization step: host identity, content pack presence and process
facts, exactly as the attach sequence would see them.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		prof, err := loadProfile()
		if err != nil {
			return err
		}

		fs := filesystem.NewRealFileSystem()
		logger := newHarnessLogger(prof)
		ctx := cmd.Context()

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Fact", "Value")
		table.Append([]string{"host root", prof.HostRoot})

		exePath := prof.Executable
		if exePath == "" {
			exePath = filepath.Join(prof.HostRoot, "bio4.exe")
		}

		detector, err := hostident.NewDetector(fs, exePath)
		if err != nil {
			return err
		}
		if identity, err := detector.Detect(ctx); err != nil {
			table.Append([]string{"host identity", fmt.Sprintf("unknown (%v)", err)})
		} else {
			table.Append([]string{"host version", identity.Version})
			table.Append([]string{"host build", identity.Build})
		}

		flags := probe.New(fs, logger).Probe(ctx, prof.HostRoot)
		table.Append([]string{"content pack path", flags.ContentPackPath()})
		table.Append([]string{"enhanced content", strconv.FormatBool(flags.EnhancedContent())})

		if facts, err := hostinfo.NewProcessInspector().Facts(ctx); err == nil {
			table.Append([]string{"process", facts.Name})
			table.Append([]string{"pid", strconv.Itoa(int(facts.PID))})
		}

		table.Render()
		return nil
	},
}
