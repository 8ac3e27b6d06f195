// Package probe inspects the host installation to classify which optional
// content distributions are present.
package probe

import (
	"context"
	"path/filepath"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

const (
	// contentPackDir is the optional content pack directory, a sibling of
	// the host install root.
	contentPackDir = "BIO4"

	// The enhanced content variant ships replacement audio banks. Both
	// must be present for the variant to count as installed.
	markerSoundBank = "snd/doorse012.xsb"
	markerWaveBank  = "snd/doorse012.xwb"
)

// Flags is the immutable set of environment facts computed once per attach
// pass. Later steps read it; nothing mutates it.
type Flags struct {
	enhancedContent bool
	contentPackPath string
}

// EnhancedContent reports whether the enhanced content variant is installed.
func (f Flags) EnhancedContent() bool {
	return f.enhancedContent
}

// ContentPackPath returns the probed content pack directory.
func (f Flags) ContentPackPath() string {
	return f.contentPackPath
}

// Prober classifies the host environment. It is side-effect-free except
// for logging.
type Prober struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a Prober.
func New(fs ports.FileSystem, logger ports.Logger) *Prober {
	return &Prober{fs: fs, logger: logger}
}

// Probe derives the content pack directory from the host install root and
// tests for the joint presence of the two marker files. Absence of either
// file, or any filesystem error, yields the flag false; the probe never
// fails.
func (p *Prober) Probe(ctx context.Context, installRoot string) Flags {
	packDir := filepath.Join(filepath.Dir(filepath.Clean(installRoot)), contentPackDir)

	flags := Flags{contentPackPath: packDir}

	hasSoundBank := p.fs.Exists(filepath.Join(packDir, filepath.FromSlash(markerSoundBank)))
	hasWaveBank := p.fs.Exists(filepath.Join(packDir, filepath.FromSlash(markerWaveBank)))

	flags.enhancedContent = hasSoundBank && hasWaveBank

	if flags.enhancedContent {
		p.logger.Info(ctx, "enhanced content pack detected", ports.F("path", packDir))
	} else {
		p.logger.Debug(ctx, "enhanced content pack not present", ports.F("path", packDir))
	}

	return flags
}
