// Package app wires the attach sequence together: probe, registry,
// orchestrator and lifecycle, with real adapters by default and injected
// fakes in tests.
package app

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/felixgeelhaar/liftoff/internal/adapters/filesystem"
	"github.com/felixgeelhaar/liftoff/internal/adapters/hostinfo"
	"github.com/felixgeelhaar/liftoff/internal/adapters/logging"
	"github.com/felixgeelhaar/liftoff/internal/buildinfo"
	"github.com/felixgeelhaar/liftoff/internal/domain/bootstrap"
	"github.com/felixgeelhaar/liftoff/internal/domain/hostident"
	"github.com/felixgeelhaar/liftoff/internal/domain/input"
	"github.com/felixgeelhaar/liftoff/internal/domain/lifecycle"
	"github.com/felixgeelhaar/liftoff/internal/domain/probe"
	"github.com/felixgeelhaar/liftoff/internal/domain/provision"
	"github.com/felixgeelhaar/liftoff/internal/domain/settings"
	"github.com/felixgeelhaar/liftoff/internal/domain/variant"
	"github.com/felixgeelhaar/liftoff/internal/guard"
	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// Default file names within the host install root.
const (
	defaultExecutableName = "bio4.exe"
	defaultSettingsName   = "liftoff.ini"
)

// Config describes the host installation the service attaches to.
type Config struct {
	// HostRoot is the host install root directory.
	HostRoot string
	// Executable is the host binary path. Defaults to HostRoot/bio4.exe.
	Executable string
	// SettingsPath is the user settings file. Defaults to HostRoot/liftoff.ini.
	SettingsPath string
}

func (c *Config) applyDefaults() {
	if c.Executable == "" {
		c.Executable = filepath.Join(c.HostRoot, defaultExecutableName)
	}
	if c.SettingsPath == "" {
		c.SettingsPath = filepath.Join(c.HostRoot, defaultSettingsName)
	}
}

// Service runs the attach sequence. It owns the lifecycle state and is
// the only component that mutates it.
type Service struct {
	cfg    Config
	logger ports.Logger
	fs     ports.FileSystem

	host    ports.HostIdentity
	inputs  ports.InputSubsystem
	config  ports.ConfigStore
	variant ports.VariantActivator
	proc    ports.ProcessInspector

	life  *lifecycle.Lifecycle
	latch guard.Latch

	mu     sync.Mutex
	report bootstrap.Report
}

// Option injects a collaborator, overriding the real adapter.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithFileSystem sets the file system.
func WithFileSystem(fs ports.FileSystem) Option {
	return func(s *Service) { s.fs = fs }
}

// WithHostIdentity sets the host identity detector.
func WithHostIdentity(host ports.HostIdentity) Option {
	return func(s *Service) { s.host = host }
}

// WithInputSubsystem sets the input subsystem.
func WithInputSubsystem(inputs ports.InputSubsystem) Option {
	return func(s *Service) { s.inputs = inputs }
}

// WithConfigStore sets the configuration store.
func WithConfigStore(config ports.ConfigStore) Option {
	return func(s *Service) { s.config = config }
}

// WithVariantActivator sets the variant activator.
func WithVariantActivator(activator ports.VariantActivator) Option {
	return func(s *Service) { s.variant = activator }
}

// WithProcessInspector sets the process inspector.
func WithProcessInspector(proc ports.ProcessInspector) Option {
	return func(s *Service) { s.proc = proc }
}

// NewService creates a Service for the given host installation.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	cfg.applyDefaults()

	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logging.NewConsoleLogger()
	}
	if s.fs == nil {
		s.fs = filesystem.NewRealFileSystem()
	}
	if s.host == nil {
		detector, err := hostident.NewDetector(s.fs, cfg.Executable)
		if err != nil {
			return nil, err
		}
		s.host = detector
	}
	if s.inputs == nil {
		s.inputs = input.New(s.logger)
	}
	if s.config == nil {
		resolver, _ := s.inputs.(settings.Resolver)
		s.config = settings.NewStore(s.fs, s.logger, cfg.SettingsPath, resolver)
	}
	if s.variant == nil {
		s.variant = variant.NewEnhancedContent(s.logger)
	}
	if s.proc == nil {
		s.proc = hostinfo.NewProcessInspector()
	}

	life, err := lifecycle.New()
	if err != nil {
		return nil, err
	}
	s.life = life

	return s, nil
}

// Attach runs the attach sequence at most once per Service lifetime.
// Duplicate calls return the already-established state without side
// effects. The whole pass runs inside a containment boundary; a fault
// escaping the orchestrator trips the latch and reports failed instead
// of propagating into the host.
func (s *Service) Attach(ctx context.Context) lifecycle.State {
	if !s.life.Begin() {
		return s.life.State()
	}

	err := guard.Protect(ctx, s.logger, "attach", func() error {
		s.run(ctx)
		return nil
	})
	if err != nil {
		s.latch.Trip()
		s.life.Finish(false, "attach", err)
	}

	return s.life.State()
}

// Detach handles the unload notification. No mandatory teardown; logging
// only, and never a failure.
func (s *Service) Detach(ctx context.Context) {
	_ = guard.Protect(ctx, s.logger, "detach", func() error {
		s.logger.Info(ctx, "detach notification received", ports.F("state", string(s.life.State())))
		return nil
	})
}

// State returns the current attach state.
func (s *Service) State() lifecycle.State {
	return s.life.State()
}

// Report returns the outcomes of the last attach pass.
func (s *Service) Report() bootstrap.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Disabled reports whether a contained fault has disabled the module.
func (s *Service) Disabled() bool {
	return s.latch.Tripped()
}

// run executes one orchestration pass. The probe runs first, before any
// step that consults its output.
func (s *Service) run(ctx context.Context) {
	prober := probe.New(s.fs, s.logger)
	flags := prober.Probe(ctx, s.cfg.HostRoot)

	rc := bootstrap.NewRunContext(ctx, s.logger, flags)
	report := bootstrap.NewOrchestrator(s.logger).Run(rc, s.registry())

	s.mu.Lock()
	s.report = report
	s.mu.Unlock()

	if fatal := report.FatalFailure(); fatal != nil {
		s.life.Finish(false, fatal.StepID().String(), fatal.Error())
		return
	}
	s.life.Finish(true, "", nil)

	succeeded, skipped, failed := report.Counts()
	s.logger.Info(ctx, "attach sequence complete",
		ports.F("succeeded", succeeded),
		ports.F("skipped", skipped),
		ports.F("failed", failed),
	)
}

// registry assembles the ordered attach sequence. Order is a hard
// dependency chain: settings parsing resolves hotkey names against the
// binding table the input step populates, so it must come last.
func (s *Service) registry() *bootstrap.Registry {
	reg := bootstrap.NewRegistry()

	reg.MustAdd(bootstrap.NewStep(
		bootstrap.MustNewStepID("host:identify"),
		bootstrap.SeverityFatal,
		func(rc *bootstrap.RunContext) error {
			identity, err := s.host.Detect(rc.Context())
			if err != nil {
				return err
			}
			rc.SetIdentity(identity)
			return nil
		},
	))

	reg.MustAdd(bootstrap.NewStep(
		bootstrap.MustNewStepID("provision:appid"),
		bootstrap.SeveritySoft,
		func(rc *bootstrap.RunContext) error {
			return provision.New(s.fs, s.logger).EnsureDefault(rc.Context(), s.cfg.HostRoot)
		},
	))

	reg.MustAdd(bootstrap.NewStep(
		bootstrap.MustNewStepID("log:startup"),
		bootstrap.SeveritySoft,
		func(rc *bootstrap.RunContext) error {
			return s.logStartup(rc)
		},
	))

	reg.MustAdd(bootstrap.NewStep(
		bootstrap.MustNewStepID("variant:enhanced"),
		bootstrap.SeveritySoft,
		func(rc *bootstrap.RunContext) error {
			return s.variant.Activate(rc.Context())
		},
	).WithPredicate(probe.Flags.EnhancedContent))

	reg.MustAdd(bootstrap.NewStep(
		bootstrap.MustNewStepID("input:init"),
		bootstrap.SeverityFatal,
		func(rc *bootstrap.RunContext) error {
			return s.inputs.Init(rc.Context())
		},
	))

	reg.MustAdd(bootstrap.NewStep(
		bootstrap.MustNewStepID("settings:load"),
		bootstrap.SeveritySoft,
		func(rc *bootstrap.RunContext) error {
			return s.config.LoadAndApply(rc.Context())
		},
	))

	return reg
}

// logStartup records the startup facts: module build identity, detected
// host version and the process the module is attached to.
func (s *Service) logStartup(rc *bootstrap.RunContext) error {
	fields := []ports.Field{
		ports.F("version", buildinfo.Version),
		ports.F("commit", buildinfo.ShortCommit()),
		ports.F("branch", buildinfo.Branch),
		ports.F("run_id", s.life.Snapshot().RunID),
		ports.F("host_root", s.cfg.HostRoot),
	}

	if identity := rc.Identity(); identity.Known {
		fields = append(fields,
			ports.F("host_version", identity.Version),
			ports.F("host_build", identity.Build),
		)
	}

	if facts, err := s.proc.Facts(rc.Context()); err == nil {
		fields = append(fields,
			ports.F("process", facts.Name),
			ports.F("pid", facts.PID),
		)
	}

	s.logger.Info(rc.Context(), "starting liftoff", fields...)
	return nil
}
