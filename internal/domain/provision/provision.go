// Package provision creates auxiliary files the host expects to find on
// first run. Provisioning is idempotent and never overwrites an existing
// file.
package provision

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

const (
	// distributionMarker identifies the host distribution that needs the
	// artifact. Provisioning is skipped when it is absent.
	distributionMarker = "bio4.exe"

	// DefaultArtifactName is the marker file the host distribution
	// expects beside its executable.
	DefaultArtifactName = "steam_appid.txt"
	// DefaultArtifactContent is the fixed identifier written on first run.
	DefaultArtifactContent = "254700"
)

// Provisioner creates first-run artifacts.
type Provisioner struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a Provisioner.
func New(fs ports.FileSystem, logger ports.Logger) *Provisioner {
	return &Provisioner{fs: fs, logger: logger}
}

// EnsureArtifact creates dir/name containing content if it does not
// already exist, and only when the distribution marker is present in dir.
// An existing file is left untouched regardless of its content.
func (p *Provisioner) EnsureArtifact(ctx context.Context, dir, name, content string) error {
	marker := filepath.Join(dir, distributionMarker)
	if !p.fs.Exists(marker) {
		p.logger.Debug(ctx, "distribution marker absent, skipping artifact",
			ports.F("marker", marker),
		)
		return nil
	}

	path := filepath.Join(dir, name)
	if p.fs.Exists(path) {
		return nil
	}

	if err := p.fs.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("creating artifact %s: %w", path, err)
	}

	p.logger.Info(ctx, "first-run artifact created", ports.F("path", path))
	return nil
}

// EnsureDefault provisions the default marker artifact in dir.
func (p *Provisioner) EnsureDefault(ctx context.Context, dir string) error {
	return p.EnsureArtifact(ctx, dir, DefaultArtifactName, DefaultArtifactContent)
}
