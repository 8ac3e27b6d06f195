// Package guard contains faults raised inside the module so they never
// propagate into the host process.
package guard

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// ContainedFault is the uniform error produced when a protected region
// panics. The orchestrator sees it as an ordinary step failure.
type ContainedFault struct {
	Region string
	Value  interface{}
	Stack  []byte
}

// Error returns the formatted fault message.
func (f *ContainedFault) Error() string {
	return fmt.Sprintf("contained fault in %q: %v", f.Region, f.Value)
}

// Protect runs fn and converts any panic into a *ContainedFault, logged
// with the region name and stack. A nil logger suppresses logging only;
// containment always holds.
func Protect(ctx context.Context, logger ports.Logger, region string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault := &ContainedFault{
				Region: region,
				Value:  r,
				Stack:  debug.Stack(),
			}
			if logger != nil {
				logger.Error(ctx, "contained fault",
					ports.F("region", region),
					ports.F("value", r),
					ports.F("stack", string(fault.Stack)),
				)
			}
			err = fault
		}
	}()

	return fn()
}

// Latch disables further module activity once a fault has been contained
// at the attach boundary. Trip is one-way.
type Latch struct {
	tripped atomic.Bool
}

// Trip disables the module.
func (l *Latch) Trip() {
	l.tripped.Store(true)
}

// Tripped reports whether the module has been disabled.
func (l *Latch) Tripped() bool {
	return l.tripped.Load()
}
