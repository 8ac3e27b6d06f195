// Package variant enables behavior specific to a detected optional
// content distribution.
package variant

import (
	"context"
	"sync/atomic"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// EnhancedContent applies the adjustments the enhanced content pack needs
// from the module. It is called at most once per attach pass, and only
// when the environment probe reported the pack present.
type EnhancedContent struct {
	logger ports.Logger
	active atomic.Bool
}

// NewEnhancedContent creates the activator.
func NewEnhancedContent(logger ports.Logger) *EnhancedContent {
	return &EnhancedContent{logger: logger}
}

// Activate switches the module into enhanced-content mode.
func (e *EnhancedContent) Activate(ctx context.Context) error {
	e.active.Store(true)
	e.logger.Info(ctx, "enhanced content adjustments applied")
	return nil
}

// Active reports whether enhanced-content mode is on.
func (e *EnhancedContent) Active() bool {
	return e.active.Load()
}

// Ensure EnhancedContent implements the port.
var _ ports.VariantActivator = (*EnhancedContent)(nil)
