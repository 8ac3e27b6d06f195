package bootstrap

import (
	"context"

	"github.com/felixgeelhaar/liftoff/internal/domain/probe"
	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// RunContext is the explicitly owned state of one attach pass, constructed
// by the orchestrator and passed by reference into each step. It replaces
// ambient process-wide globals so the sequence stays testable with
// injected fakes.
type RunContext struct {
	ctx      context.Context
	logger   ports.Logger
	flags    probe.Flags
	identity ports.Identity
}

// NewRunContext creates a RunContext for one attach pass.
func NewRunContext(ctx context.Context, logger ports.Logger, flags probe.Flags) *RunContext {
	return &RunContext{
		ctx:    ctx,
		logger: logger,
		flags:  flags,
	}
}

// Context returns the underlying context.Context.
func (rc *RunContext) Context() context.Context {
	return rc.ctx
}

// Logger returns the pass logger.
func (rc *RunContext) Logger() ports.Logger {
	return rc.logger
}

// Flags returns the probed environment flags. Read-only to all steps.
func (rc *RunContext) Flags() probe.Flags {
	return rc.flags
}

// Identity returns the host identity resolved by the identity step.
// Zero until that step has succeeded.
func (rc *RunContext) Identity() ports.Identity {
	return rc.identity
}

// SetIdentity records the resolved host identity for later steps.
func (rc *RunContext) SetIdentity(id ports.Identity) {
	rc.identity = id
}
