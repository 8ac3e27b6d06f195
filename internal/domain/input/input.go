// Package input brings up the input remapping subsystem. Init populates
// the key name to binding table that configuration parsing resolves
// hotkey names against, so it must run before settings are loaded.
package input

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// ErrNotInitialized indicates a lookup before Init has populated the table.
var ErrNotInitialized = errors.New("input subsystem not initialized")

//go:embed bindings.toml
var bindingsTOML []byte

// Subsystem holds the key binding table.
type Subsystem struct {
	mu       sync.RWMutex
	logger   ports.Logger
	bindings map[string]int
}

// New creates an uninitialized Subsystem.
func New(logger ports.Logger) *Subsystem {
	return &Subsystem{logger: logger}
}

// Init loads the embedded binding catalog and populates the lookup table.
func (s *Subsystem) Init(ctx context.Context) error {
	var catalog struct {
		Bindings map[string]int `toml:"bindings"`
	}
	if err := toml.Unmarshal(bindingsTOML, &catalog); err != nil {
		return fmt.Errorf("parsing binding catalog: %w", err)
	}
	if len(catalog.Bindings) == 0 {
		return errors.New("binding catalog is empty")
	}

	table := make(map[string]int, len(catalog.Bindings))
	for name, code := range catalog.Bindings {
		table[strings.ToUpper(name)] = code
	}

	s.mu.Lock()
	s.bindings = table
	s.mu.Unlock()

	s.logger.Debug(ctx, "input subsystem initialized", ports.F("bindings", len(table)))
	return nil
}

// Lookup resolves a key name to its binding code. Names are
// case-insensitive.
func (s *Subsystem) Lookup(name string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bindings == nil {
		return 0, false
	}
	code, ok := s.bindings[strings.ToUpper(name)]
	return code, ok
}

// Initialized reports whether the binding table has been populated.
func (s *Subsystem) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindings != nil
}

// Ensure Subsystem implements the port.
var _ ports.InputSubsystem = (*Subsystem)(nil)
