// Package liftoff is an in-process runtime modification module. The host
// notifies it once at load time via Attach; within a fault containment
// boundary it probes the host environment, then walks an ordered,
// severity-tagged registry of initialization steps. A fatal step failure
// leaves the host fully functional with module features inactive; it
// never terminates or destabilizes the host process.
package liftoff

import (
	"context"
	"io"
	"sync"

	"github.com/felixgeelhaar/liftoff/internal/adapters/logging"
	"github.com/felixgeelhaar/liftoff/internal/app"
	"github.com/felixgeelhaar/liftoff/internal/domain/lifecycle"
	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// Result is the terminal state of the attach sequence.
type Result string

const (
	// ResultReady means the module is active.
	ResultReady Result = "ready"
	// ResultFailed means a fatal step failed and module features are
	// inactive.
	ResultFailed Result = "failed"
	// ResultAttaching means the sequence is still running. Only a
	// re-entrant notification can ever observe it.
	ResultAttaching Result = "attaching"
	// ResultUninitialized means no attach notification has been handled.
	ResultUninitialized Result = "uninitialized"
)

// Options configures the module for a host installation.
type Options struct {
	// HostRoot is the host install root directory.
	HostRoot string
	// Executable overrides the host binary path.
	Executable string
	// SettingsPath overrides the user settings file path.
	SettingsPath string
	// Verbose enables debug logging.
	Verbose bool
	// LogJSON switches log output to JSON.
	LogJSON bool
	// LogOutput overrides the log destination (default stderr).
	LogOutput io.Writer
}

// Module is one attachable instance. The package-level Attach uses a
// process-wide instance; independent instances exist for tests and for
// the CLI harness.
type Module struct {
	svc *app.Service
}

// NewModule creates a detached Module.
func NewModule(opts Options) (*Module, error) {
	logOpts := []logging.ConsoleLoggerOption{}
	if opts.Verbose {
		logOpts = append(logOpts, logging.WithLevel(ports.LevelDebug))
	}
	if opts.LogJSON {
		logOpts = append(logOpts, logging.WithJSONFormat(true))
	}
	if opts.LogOutput != nil {
		logOpts = append(logOpts, logging.WithOutput(opts.LogOutput))
	}

	svc, err := app.NewService(app.Config{
		HostRoot:     opts.HostRoot,
		Executable:   opts.Executable,
		SettingsPath: opts.SettingsPath,
	}, app.WithLogger(logging.NewConsoleLogger(logOpts...)))
	if err != nil {
		return nil, err
	}

	return &Module{svc: svc}, nil
}

// Attach runs the attach sequence. The first call does the work; every
// later call is a no-op returning the established state.
func (m *Module) Attach(ctx context.Context) Result {
	return toResult(m.svc.Attach(ctx))
}

// Detach handles the unload notification. Best-effort only.
func (m *Module) Detach(ctx context.Context) {
	m.svc.Detach(ctx)
}

// State returns the module's current attach state.
func (m *Module) State() Result {
	return toResult(m.svc.State())
}

func toResult(s lifecycle.State) Result {
	switch s {
	case lifecycle.StateReady:
		return ResultReady
	case lifecycle.StateAttaching:
		return ResultAttaching
	case lifecycle.StateUninitialized:
		return ResultUninitialized
	default:
		return ResultFailed
	}
}

var (
	processMu     sync.Mutex
	processModule *Module
)

// Attach is the process-wide attach notification entry point. The first
// call constructs the module and runs the sequence; duplicates return
// the established state and ignore their options. A module that cannot
// even be constructed reports ResultFailed.
func Attach(ctx context.Context, opts Options) Result {
	processMu.Lock()
	if processModule == nil {
		m, err := NewModule(opts)
		if err != nil {
			processMu.Unlock()
			return ResultFailed
		}
		processModule = m
	}
	m := processModule
	processMu.Unlock()

	return m.Attach(ctx)
}

// Detach is the process-wide detach notification entry point.
func Detach(ctx context.Context) {
	processMu.Lock()
	m := processModule
	processMu.Unlock()

	if m != nil {
		m.Detach(ctx)
	}
}
