package bootstrap

import (
	"errors"
	"fmt"
)

// ErrDuplicateStep indicates two registered steps share an ID.
var ErrDuplicateStep = errors.New("duplicate step ID")

// Registry is the ordered list of initialization steps. Order is a
// correctness invariant: step i may assume every prior step either
// succeeded or was skipped, and that no prior fatal step failed.
type Registry struct {
	steps []InitStep
	index map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]struct{}),
	}
}

// Add appends a step. Step IDs must be unique.
func (r *Registry) Add(step InitStep) error {
	if step.ID().IsZero() {
		return ErrEmptyStepID
	}
	if _, ok := r.index[step.ID().String()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateStep, step.ID())
	}
	r.steps = append(r.steps, step)
	r.index[step.ID().String()] = struct{}{}
	return nil
}

// MustAdd appends a step, panicking on registration errors. Use for the
// statically defined default sequence.
func (r *Registry) MustAdd(step InitStep) {
	if err := r.Add(step); err != nil {
		panic(err)
	}
}

// Steps returns the registered steps in order.
func (r *Registry) Steps() []InitStep {
	return r.steps
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	return len(r.steps)
}
