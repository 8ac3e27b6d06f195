package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/liftoff/internal/adapters/logging"
	"github.com/felixgeelhaar/liftoff/internal/app"
	"github.com/felixgeelhaar/liftoff/internal/domain/bootstrap"
	"github.com/felixgeelhaar/liftoff/internal/domain/lifecycle"
	"github.com/felixgeelhaar/liftoff/internal/ports"
)

var attachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Run the attach sequence against a host installation",
	Long: `Attach probes the host installation, then walks the initialization
registry in order, printing the outcome of every step. The exit status
reports the terminal attach state.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		prof, err := loadProfile()
		if err != nil {
			return err
		}

		svc, err := app.NewService(app.Config{
			HostRoot:     prof.HostRoot,
			Executable:   prof.Executable,
			SettingsPath: prof.Settings,
		}, app.WithLogger(newHarnessLogger(prof)))
		if err != nil {
			return err
		}

		state := svc.Attach(cmd.Context())
		renderReport(svc.Report())

		if state != lifecycle.StateReady {
			return fmt.Errorf("attach finished in state %q", state)
		}
		fmt.Println("attach finished in state \"ready\"")
		return nil
	},
}

// newHarnessLogger builds the console logger from the profile.
func newHarnessLogger(prof profile) ports.Logger {
	opts := []logging.ConsoleLoggerOption{}
	if prof.Verbose {
		opts = append(opts, logging.WithLevel(ports.LevelDebug))
	}
	if prof.JSONLogs {
		opts = append(opts, logging.WithJSONFormat(true))
	}
	return logging.NewConsoleLogger(opts...)
}

// renderReport prints the per-step outcomes of an attach pass.
func renderReport(report bootstrap.Report) {
	outcomes := report.Outcomes()
	if len(outcomes) == 0 {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Step", "Severity", "Status", "Duration", "Error")

	for _, o := range outcomes {
		detail := ""
		if o.Error() != nil {
			detail = o.Error().Error()
		}
		table.Append([]string{
			o.StepID().String(),
			o.Severity().String(),
			o.Status().String(),
			o.Duration().String(),
			detail,
		})
	}

	table.Render()
}
