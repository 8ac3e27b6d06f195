// Package hostident resolves which host build the module is attached to.
// Detection fails closed: an executable that does not match a known build
// fingerprint is an error, never a guess.
package hostident

import (
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"

	"github.com/felixgeelhaar/liftoff/internal/ports"
)

// Detection errors.
var (
	ErrExecutableNotFound = errors.New("host executable not found")
	ErrUnknownExecutable  = errors.New("host executable does not match any known build")
	ErrUnsupportedVersion = errors.New("host build is older than the minimum supported version")
)

//go:embed known_builds.toml
var knownBuildsTOML []byte

// Build describes one supported host build.
type Build struct {
	Version string `toml:"version"`
	Label   string `toml:"label"`
}

// Table maps executable SHA-256 digests to known builds.
type Table map[string]Build

// DefaultTable returns the embedded known-builds table.
func DefaultTable() (Table, error) {
	var file struct {
		Builds Table `toml:"builds"`
	}
	if err := toml.Unmarshal(knownBuildsTOML, &file); err != nil {
		return nil, fmt.Errorf("parsing known builds table: %w", err)
	}
	return file.Builds, nil
}

// Detector resolves host identity by fingerprinting the executable.
type Detector struct {
	fs         ports.FileSystem
	table      Table
	exePath    string
	minVersion string
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithTable overrides the known-builds table.
func WithTable(table Table) DetectorOption {
	return func(d *Detector) {
		d.table = table
	}
}

// WithMinVersion sets the minimum supported host version (default "1.0.6").
func WithMinVersion(version string) DetectorOption {
	return func(d *Detector) {
		d.minVersion = version
	}
}

// NewDetector creates a Detector for the executable at exePath.
func NewDetector(fs ports.FileSystem, exePath string, opts ...DetectorOption) (*Detector, error) {
	d := &Detector{
		fs:         fs,
		exePath:    exePath,
		minVersion: "1.0.6",
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.table == nil {
		table, err := DefaultTable()
		if err != nil {
			return nil, err
		}
		d.table = table
	}

	return d, nil
}

// Detect fingerprints the host executable and matches it against the
// known-builds table.
func (d *Detector) Detect(_ context.Context) (ports.Identity, error) {
	if !d.fs.Exists(d.exePath) {
		return ports.Identity{Executable: d.exePath}, fmt.Errorf("%w: %s", ErrExecutableNotFound, d.exePath)
	}

	data, err := d.fs.ReadFile(d.exePath)
	if err != nil {
		return ports.Identity{Executable: d.exePath}, fmt.Errorf("reading host executable: %w", err)
	}

	sum := sha256.Sum256(data)
	digest := hex.EncodeToString(sum[:])

	build, ok := d.table[digest]
	if !ok {
		return ports.Identity{Executable: d.exePath, Build: digest[:8]},
			fmt.Errorf("%w: %s", ErrUnknownExecutable, digest[:8])
	}

	identity := ports.Identity{
		Version:    build.Version,
		Build:      digest[:8],
		Executable: d.exePath,
		Known:      true,
	}

	if semver.Compare("v"+build.Version, "v"+d.minVersion) < 0 {
		return identity, fmt.Errorf("%w: %s < %s", ErrUnsupportedVersion, build.Version, d.minVersion)
	}

	return identity, nil
}

// Ensure Detector implements the port.
var _ ports.HostIdentity = (*Detector)(nil)
