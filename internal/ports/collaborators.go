package ports

import "context"

// Identity describes the host executable the module has been loaded into.
type Identity struct {
	// Version is the detected host build version (e.g. "1.1.0").
	Version string
	// Build is a short fingerprint of the executable contents.
	Build string
	// Executable is the absolute path of the host binary.
	Executable string
	// Known reports whether the executable matched a supported build.
	Known bool
}

// HostIdentity resolves which host build the module is running inside.
// It fails closed: an unrecognized executable is an error, not a guess.
type HostIdentity interface {
	Detect(ctx context.Context) (Identity, error)
}

// InputSubsystem brings up the input remapping layer. Init must complete
// before configuration parsing, which resolves hotkey names against the
// binding table Init populates.
type InputSubsystem interface {
	Init(ctx context.Context) error
}

// ConfigStore loads and applies user settings. It depends on the input
// subsystem having populated its binding table.
type ConfigStore interface {
	LoadAndApply(ctx context.Context) error
}

// VariantActivator enables behavior specific to a detected optional
// content distribution. Called at most once per attach pass, and only
// when the environment probe reported the variant present.
type VariantActivator interface {
	Activate(ctx context.Context) error
}

// ProcessFacts describes the process the module is attached to.
type ProcessFacts struct {
	PID        int32
	Name       string
	Executable string
}

// ProcessInspector reports facts about the current process for startup
// logging. Failures are tolerable; callers log what they can get.
type ProcessInspector interface {
	Facts(ctx context.Context) (ProcessFacts, error)
}
