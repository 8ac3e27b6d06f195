package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRealFileSystem(t *testing.T) {
	fs := NewRealFileSystem()
	if fs == nil {
		t.Error("NewRealFileSystem() should not return nil")
	}
}

func TestRealFileSystem_Integration(t *testing.T) {
	fs := NewRealFileSystem()
	tmpDir := t.TempDir()

	// Test WriteFile and ReadFile
	testFile := filepath.Join(tmpDir, "steam_appid.txt")
	err := fs.WriteFile(testFile, []byte("254700"), 0o644)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content, err := fs.ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "254700" {
		t.Errorf("ReadFile() = %q, want %q", string(content), "254700")
	}

	// Test Exists
	if !fs.Exists(testFile) {
		t.Error("Exists() should return true")
	}
	if fs.Exists(filepath.Join(tmpDir, "missing.txt")) {
		t.Error("Exists() should return false for missing file")
	}

	// Test IsDir
	if !fs.IsDir(tmpDir) {
		t.Error("IsDir() should return true for directory")
	}
	if fs.IsDir(testFile) {
		t.Error("IsDir() should return false for file")
	}

	// Test MkdirAll
	nestedDir := filepath.Join(tmpDir, "nested", "dir")
	err = fs.MkdirAll(nestedDir, 0o755)
	if err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if !fs.Exists(nestedDir) {
		t.Error("MkdirAll() should create nested directories")
	}
}

func TestRealFileSystem_ExistsSeesSymlink(t *testing.T) {
	fs := NewRealFileSystem()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target.txt")
	if err := os.WriteFile(target, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	link := filepath.Join(tmpDir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}

	if !fs.Exists(link) {
		t.Error("Exists() should return true for symlink")
	}
}

func TestRealFileSystem_ReadFile_NotFound(t *testing.T) {
	fs := NewRealFileSystem()

	_, err := fs.ReadFile("/nonexistent/path/file.txt")
	if err == nil {
		t.Error("ReadFile() should return error for non-existent file")
	}
}
