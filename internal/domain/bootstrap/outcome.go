// Package bootstrap holds the attach sequence: an ordered, severity-tagged
// registry of initialization steps and the orchestrator that walks it.
package bootstrap

import "time"

// OutcomeStatus is the result classification of running one step.
type OutcomeStatus string

const (
	// StatusSucceeded indicates the step's action completed.
	StatusSucceeded OutcomeStatus = "succeeded"
	// StatusSkipped indicates the step's predicate was false, or a prior
	// fatal failure prevented the step from running.
	StatusSkipped OutcomeStatus = "skipped"
	// StatusFailed indicates the step's action returned an error or
	// raised a contained fault.
	StatusFailed OutcomeStatus = "failed"
)

// String returns the string representation of the status.
func (s OutcomeStatus) String() string {
	return string(s)
}

// StepOutcome captures the result of running a single step. Outcomes live
// only for the duration of one orchestration pass.
type StepOutcome struct {
	stepID   StepID
	severity Severity
	status   OutcomeStatus
	err      error
	duration time.Duration
}

// NewStepOutcome creates a StepOutcome.
func NewStepOutcome(stepID StepID, severity Severity, status OutcomeStatus, err error) StepOutcome {
	return StepOutcome{
		stepID:   stepID,
		severity: severity,
		status:   status,
		err:      err,
	}
}

// StepID returns the ID of the step that was run.
func (o StepOutcome) StepID() StepID {
	return o.stepID
}

// Severity returns the step's declared severity.
func (o StepOutcome) Severity() Severity {
	return o.severity
}

// Status returns the outcome classification.
func (o StepOutcome) Status() OutcomeStatus {
	return o.status
}

// Error returns the failure detail, if any.
func (o StepOutcome) Error() error {
	return o.err
}

// Duration returns how long the step's action ran.
func (o StepOutcome) Duration() time.Duration {
	return o.duration
}

// Failed reports whether the step failed.
func (o StepOutcome) Failed() bool {
	return o.status == StatusFailed
}

// FatalFailure reports whether the step failed and was fatal.
func (o StepOutcome) FatalFailure() bool {
	return o.status == StatusFailed && o.severity == SeverityFatal
}

// WithDuration returns a copy of the outcome with duration set.
func (o StepOutcome) WithDuration(d time.Duration) StepOutcome {
	o.duration = d
	return o
}
