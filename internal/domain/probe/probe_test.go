package probe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/liftoff/internal/adapters/filesystem"
	"github.com/felixgeelhaar/liftoff/internal/adapters/logging"
)

func writeMarker(t *testing.T, packDir, name string) {
	t.Helper()
	path := filepath.Join(packDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("bank"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProbe_BothMarkersPresent(t *testing.T) {
	tmp := t.TempDir()
	installRoot := filepath.Join(tmp, "game")
	packDir := filepath.Join(tmp, "BIO4")
	writeMarker(t, packDir, "snd/doorse012.xsb")
	writeMarker(t, packDir, "snd/doorse012.xwb")

	p := New(filesystem.NewRealFileSystem(), logging.NewNopLogger())
	flags := p.Probe(context.Background(), installRoot)

	if !flags.EnhancedContent() {
		t.Error("EnhancedContent() = false, want true")
	}
	if flags.ContentPackPath() != packDir {
		t.Errorf("ContentPackPath() = %s, want %s", flags.ContentPackPath(), packDir)
	}
}

func TestProbe_OneMarkerMissing(t *testing.T) {
	tests := []struct {
		name    string
		markers []string
	}{
		{"sound bank only", []string{"snd/doorse012.xsb"}},
		{"wave bank only", []string{"snd/doorse012.xwb"}},
		{"none", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := t.TempDir()
			installRoot := filepath.Join(tmp, "game")
			for _, m := range tt.markers {
				writeMarker(t, filepath.Join(tmp, "BIO4"), m)
			}

			p := New(filesystem.NewRealFileSystem(), logging.NewNopLogger())
			flags := p.Probe(context.Background(), installRoot)

			if flags.EnhancedContent() {
				t.Error("EnhancedContent() = true, want false")
			}
		})
	}
}

func TestProbe_NonexistentRootNeverFails(t *testing.T) {
	p := New(filesystem.NewRealFileSystem(), logging.NewNopLogger())

	flags := p.Probe(context.Background(), filepath.Join(t.TempDir(), "no", "such", "dir"))

	if flags.EnhancedContent() {
		t.Error("missing paths must read as feature absent")
	}
}
