package bootstrap

import (
	"errors"
	"regexp"
	"strings"

	"github.com/felixgeelhaar/liftoff/internal/domain/probe"
)

// StepID uniquely identifies an initialization step.
// Format: subsystem:action (e.g. "input:init").
type StepID struct {
	value string
}

// Errors for StepID validation.
var (
	ErrEmptyStepID   = errors.New("step ID cannot be empty")
	ErrInvalidStepID = errors.New("step ID format invalid: must be alphanumeric segments separated by colons")
)

// stepIDPattern validates step ID format.
var stepIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*(?::[a-zA-Z0-9][a-zA-Z0-9_-]*)*$`)

// NewStepID creates a new StepID from a string.
func NewStepID(value string) (StepID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return StepID{}, ErrEmptyStepID
	}

	if !stepIDPattern.MatchString(trimmed) {
		return StepID{}, ErrInvalidStepID
	}

	return StepID{value: trimmed}, nil
}

// MustNewStepID creates a new StepID from a string, panicking on error.
// Use this for compile-time known values that should never fail validation.
func MustNewStepID(value string) StepID {
	id, err := NewStepID(value)
	if err != nil {
		panic("invalid step ID: " + value + ": " + err.Error())
	}
	return id
}

// String returns the string representation.
func (id StepID) String() string {
	return id.value
}

// Equals checks equality with another StepID.
func (id StepID) Equals(other StepID) bool {
	return id.value == other.value
}

// IsZero returns true if this is a zero-value StepID.
func (id StepID) IsZero() bool {
	return id.value == ""
}

// Severity classifies how a step's failure affects the rest of the
// attach sequence.
type Severity int

const (
	// SeveritySoft means failure is logged and the sequence continues.
	SeveritySoft Severity = iota
	// SeverityFatal means failure invalidates all later steps'
	// preconditions and aborts the remaining sequence.
	SeverityFatal
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	if s == SeverityFatal {
		return "fatal"
	}
	return "soft"
}

// Predicate decides whether a step is eligible to run given the probed
// environment flags.
type Predicate func(probe.Flags) bool

// Action is the call into the step's collaborator.
type Action func(rc *RunContext) error

// InitStep is a named unit of the attach sequence. Steps are defined
// statically and ordered; ordering is a hard dependency chain.
type InitStep struct {
	id        StepID
	severity  Severity
	predicate Predicate
	action    Action
}

// NewStep creates an InitStep that always runs.
func NewStep(id StepID, severity Severity, action Action) InitStep {
	return InitStep{id: id, severity: severity, action: action}
}

// WithPredicate returns a copy of the step gated on the given predicate.
func (s InitStep) WithPredicate(p Predicate) InitStep {
	s.predicate = p
	return s
}

// ID returns the step identifier.
func (s InitStep) ID() StepID {
	return s.id
}

// Severity returns the step's failure classification.
func (s InitStep) Severity() Severity {
	return s.severity
}

// Eligible evaluates the step's predicate against the probed flags.
// Steps without a predicate always run.
func (s InitStep) Eligible(flags probe.Flags) bool {
	if s.predicate == nil {
		return true
	}
	return s.predicate(flags)
}
