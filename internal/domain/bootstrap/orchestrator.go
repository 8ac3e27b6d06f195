package bootstrap

import (
	"time"

	"github.com/felixgeelhaar/liftoff/internal/guard"
	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// Orchestrator walks a Registry in order, enforcing the gating rule:
// a fatal failure halts the remaining sequence, a soft failure is logged
// and the sequence continues.
type Orchestrator struct {
	logger ports.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(logger ports.Logger) *Orchestrator {
	return &Orchestrator{logger: logger}
}

// Run executes every eligible step in registry order. Each action runs
// inside a containment region, so a panicking collaborator surfaces as a
// failed outcome rather than propagating into the host.
func (o *Orchestrator) Run(rc *RunContext, reg *Registry) Report {
	outcomes := make([]StepOutcome, 0, reg.Len())

	for _, step := range reg.Steps() {
		outcome := o.runStep(rc, step)
		outcomes = append(outcomes, outcome)

		if outcome.FatalFailure() {
			o.logger.Error(rc.Context(), "fatal step failed, aborting attach sequence",
				ports.F("step", step.ID().String()),
				ports.F("error", outcome.Error()),
			)
			break
		}
		if outcome.Failed() {
			o.logger.Warn(rc.Context(), "soft step failed, continuing",
				ports.F("step", step.ID().String()),
				ports.F("error", outcome.Error()),
			)
		}
	}

	return Report{outcomes: outcomes}
}

// runStep evaluates the step's predicate and executes its action.
func (o *Orchestrator) runStep(rc *RunContext, step InitStep) StepOutcome {
	if !step.Eligible(rc.Flags()) {
		o.logger.Debug(rc.Context(), "step skipped", ports.F("step", step.ID().String()))
		return NewStepOutcome(step.ID(), step.Severity(), StatusSkipped, nil)
	}

	start := time.Now()
	err := guard.Protect(rc.Context(), o.logger, step.ID().String(), func() error {
		return step.action(rc)
	})
	duration := time.Since(start)

	if err != nil {
		return NewStepOutcome(step.ID(), step.Severity(), StatusFailed, err).WithDuration(duration)
	}

	o.logger.Debug(rc.Context(), "step succeeded",
		ports.F("step", step.ID().String()),
		ports.F("duration", duration),
	)
	return NewStepOutcome(step.ID(), step.Severity(), StatusSucceeded, nil).WithDuration(duration)
}
