package hostident

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/liftoff/internal/adapters/filesystem"
)

func writeExecutable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bio4.exe")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func digestOf(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func TestDetect_KnownBuild(t *testing.T) {
	exe := writeExecutable(t, "retail build")
	table := Table{digestOf("retail build"): {Version: "1.1.0", Label: "retail"}}

	d, err := NewDetector(filesystem.NewRealFileSystem(), exe, WithTable(table))
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}

	identity, err := d.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !identity.Known {
		t.Error("Known = false, want true")
	}
	if identity.Version != "1.1.0" {
		t.Errorf("Version = %q, want 1.1.0", identity.Version)
	}
	if identity.Build != digestOf("retail build")[:8] {
		t.Errorf("Build = %q, want digest prefix", identity.Build)
	}
}

func TestDetect_UnknownExecutableFailsClosed(t *testing.T) {
	exe := writeExecutable(t, "modified build")
	table := Table{digestOf("retail build"): {Version: "1.1.0"}}

	d, _ := NewDetector(filesystem.NewRealFileSystem(), exe, WithTable(table))

	identity, err := d.Detect(context.Background())
	if !errors.Is(err, ErrUnknownExecutable) {
		t.Fatalf("error = %v, want ErrUnknownExecutable", err)
	}
	if identity.Known {
		t.Error("Known = true for unknown executable")
	}
}

func TestDetect_MissingExecutable(t *testing.T) {
	d, _ := NewDetector(
		filesystem.NewRealFileSystem(),
		filepath.Join(t.TempDir(), "bio4.exe"),
		WithTable(Table{}),
	)

	_, err := d.Detect(context.Background())
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Errorf("error = %v, want ErrExecutableNotFound", err)
	}
}

func TestDetect_VersionBelowMinimum(t *testing.T) {
	exe := writeExecutable(t, "old build")
	table := Table{digestOf("old build"): {Version: "1.0.0"}}

	d, _ := NewDetector(filesystem.NewRealFileSystem(), exe,
		WithTable(table),
		WithMinVersion("1.0.6"),
	)

	identity, err := d.Detect(context.Background())
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("error = %v, want ErrUnsupportedVersion", err)
	}
	// Identity is still reported so the failure can be logged usefully.
	if identity.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", identity.Version)
	}
}

func TestDefaultTable_Parses(t *testing.T) {
	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable() error = %v", err)
	}
	if len(table) == 0 {
		t.Fatal("DefaultTable() is empty")
	}
	for digest, build := range table {
		if len(digest) != 64 {
			t.Errorf("digest %q is not a SHA-256 hex string", digest)
		}
		if build.Version == "" {
			t.Errorf("build %q has no version", digest)
		}
	}
}
