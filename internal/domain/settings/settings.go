// Package settings loads and applies user configuration from an INI file.
// Hotkey names are resolved through the input subsystem's binding table,
// which must be populated before LoadAndApply runs.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// ErrBindingsUnavailable indicates LoadAndApply ran before the input
// subsystem populated its binding table.
var ErrBindingsUnavailable = errors.New("key binding table not populated")

// Resolver resolves hotkey names to binding codes. The input subsystem
// satisfies this.
type Resolver interface {
	Lookup(name string) (int, bool)
	Initialized() bool
}

// Options is the applied configuration.
type Options struct {
	SkipIntroLogos   bool
	UseEnhancedAudio bool
	VerboseLog       bool
	Hotkeys          map[string]int
}

// defaults returns the configuration applied when no settings file exists.
func defaults() Options {
	return Options{
		Hotkeys: map[string]int{},
	}
}

// Store reads, parses and applies the user settings file.
type Store struct {
	mu       sync.RWMutex
	fs       ports.FileSystem
	logger   ports.Logger
	path     string
	resolver Resolver
	applied  Options
}

// NewStore creates a Store for the settings file at path.
func NewStore(fs ports.FileSystem, logger ports.Logger, path string, resolver Resolver) *Store {
	return &Store{
		fs:       fs,
		logger:   logger,
		path:     path,
		resolver: resolver,
		applied:  defaults(),
	}
}

// LoadAndApply parses the settings file and applies it. A missing file
// applies defaults and is not an error; a parse failure is.
func (s *Store) LoadAndApply(ctx context.Context) error {
	if s.resolver == nil || !s.resolver.Initialized() {
		return ErrBindingsUnavailable
	}

	if !s.fs.Exists(s.path) {
		s.logger.Debug(ctx, "no settings file, applying defaults", ports.F("path", s.path))
		s.apply(defaults())
		return nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}

	file, err := ini.Load(data)
	if err != nil {
		return fmt.Errorf("parsing settings file: %w", err)
	}

	opts := defaults()
	opts.SkipIntroLogos = file.Section("display").Key("skip_intro_logos").MustBool(false)
	opts.UseEnhancedAudio = file.Section("audio").Key("use_enhanced_banks").MustBool(false)
	opts.VerboseLog = file.Section("log").Key("verbose").MustBool(false)

	for _, key := range file.Section("hotkeys").Keys() {
		name := key.Value()
		code, ok := s.resolver.Lookup(name)
		if !ok {
			s.logger.Warn(ctx, "unresolved hotkey name, ignoring",
				ports.F("action", key.Name()),
				ports.F("key", name),
			)
			continue
		}
		opts.Hotkeys[key.Name()] = code
	}

	s.apply(opts)
	s.logger.Debug(ctx, "settings applied",
		ports.F("path", s.path),
		ports.F("hotkeys", len(opts.Hotkeys)),
	)
	return nil
}

// Options returns a snapshot of the applied configuration.
func (s *Store) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.applied
	snapshot.Hotkeys = make(map[string]int, len(s.applied.Hotkeys))
	for k, v := range s.applied.Hotkeys {
		snapshot.Hotkeys[k] = v
	}
	return snapshot
}

func (s *Store) apply(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = opts
}

// Ensure Store implements the port.
var _ ports.ConfigStore = (*Store)(nil)
