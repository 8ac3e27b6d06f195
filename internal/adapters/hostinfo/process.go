// Package hostinfo inspects the process the module is attached to.
package hostinfo

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// ProcessInspector reports facts about the current process via gopsutil.
type ProcessInspector struct{}

// NewProcessInspector creates a new ProcessInspector.
func NewProcessInspector() *ProcessInspector {
	return &ProcessInspector{}
}

// Facts returns the current process's PID, name and executable path.
// Partial information is returned alongside the error when lookups fail.
func (p *ProcessInspector) Facts(ctx context.Context) (ports.ProcessFacts, error) {
	pid := int32(os.Getpid())
	facts := ports.ProcessFacts{PID: pid}

	proc, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return facts, fmt.Errorf("inspecting pid %d: %w", pid, err)
	}

	if name, err := proc.NameWithContext(ctx); err == nil {
		facts.Name = name
	}
	if exe, err := proc.ExeWithContext(ctx); err == nil {
		facts.Executable = exe
	}

	return facts, nil
}

// Ensure ProcessInspector implements the port.
var _ ports.ProcessInspector = (*ProcessInspector)(nil)
