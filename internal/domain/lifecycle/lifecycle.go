// Package lifecycle owns the one-way attach state machine. Exactly one
// attaching transition may ever occur per process lifetime; ready and
// failed are terminal.
package lifecycle

import (
	"fmt"
	"sync"
	"time"

	"github.com/felixgeelhaar/statekit"
	"github.com/google/uuid"
)

// State represents the module's attach state.
type State string

const (
	// StateUninitialized means no attach notification has been handled yet.
	StateUninitialized State = "uninitialized"
	// StateAttaching means the attach sequence is running.
	StateAttaching State = "attaching"
	// StateReady means the attach sequence completed without fatal failure.
	StateReady State = "ready"
	// StateFailed means a fatal step failed; module features are inactive.
	StateFailed State = "failed"
)

// Terminal reports whether the state is final.
func (s State) Terminal() bool {
	return s == StateReady || s == StateFailed
}

// Event types for the attach state machine.
const (
	EventAttach = "ATTACH"
	EventReady  = "READY"
	EventFail   = "FAIL"
)

// Context holds the runtime facts of the attach pass.
// This is used by statekit as the context type.
type Context struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	FatalStep  string
	LastError  error
}

// Lifecycle is the single source of truth for "has the module already
// brought itself up". It is mutated exclusively by the orchestrating
// caller; everyone else reads.
type Lifecycle struct {
	mu      sync.Mutex
	interp  *statekit.Interpreter[Context]
	runtime Context
}

// New creates a Lifecycle in the uninitialized state.
func New() (*Lifecycle, error) {
	machine, err := statekit.NewMachine[Context]("liftoff-attach").
		WithInitial(statekit.StateID(StateUninitialized)).
		WithContext(Context{}).
		State(statekit.StateID(StateUninitialized)).
		On(EventAttach).Target(statekit.StateID(StateAttaching)).Done().
		State(statekit.StateID(StateAttaching)).
		On(EventReady).Target(statekit.StateID(StateReady)).
		On(EventFail).Target(statekit.StateID(StateFailed)).Done().
		// Terminal states accept no events.
		State(statekit.StateID(StateReady)).Done().
		State(statekit.StateID(StateFailed)).Done().
		Build()
	if err != nil {
		return nil, fmt.Errorf("building attach state machine: %w", err)
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()

	return &Lifecycle{interp: interp}, nil
}

// Begin attempts the single uninitialized → attaching transition.
// It returns false if the transition already happened, in which case the
// caller must treat the notification as a duplicate and do no work.
func (l *Lifecycle) Begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if State(l.interp.State().Value) != StateUninitialized {
		return false
	}

	l.interp.Send(statekit.Event{Type: EventAttach})
	l.runtime.RunID = uuid.NewString()
	l.runtime.StartedAt = time.Now()
	return true
}

// Finish moves attaching to its terminal state. fatalStep and lastErr
// identify the aborting step when ready is false.
func (l *Lifecycle) Finish(ready bool, fatalStep string, lastErr error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if State(l.interp.State().Value) != StateAttaching {
		return
	}

	event := EventReady
	if !ready {
		event = EventFail
		l.runtime.FatalStep = fatalStep
		l.runtime.LastError = lastErr
	}
	l.runtime.FinishedAt = time.Now()
	l.interp.Send(statekit.Event{Type: statekit.EventType(event)})
}

// State returns the current attach state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State(l.interp.State().Value)
}

// Snapshot returns a copy of the runtime facts.
func (l *Lifecycle) Snapshot() Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.runtime
}
