package testutil

import (
	"path/filepath"
	"testing"

	"patchverk/internal/adapters/filesystem"

	"github.com/spf13/afero"
)

// TestFileSystem is a ports.FileSystem backed by an in-memory afero file system.
// Use it in tests that need a real directory tree; use MockFileSystem to stub single calls.
type TestFileSystem struct {
	*filesystem.AferoFileSystem
	fs afero.Fs
	t  *testing.T
}

func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	fs := afero.NewMemMapFs()
	return &TestFileSystem{
		AferoFileSystem: filesystem.NewAferoFileSystem(fs),
		fs:              fs,
		t:               t,
	}
}

// AddFile writes content to path, creating parent directories. It fails the test on error.
func (f *TestFileSystem) AddFile(path string, content string) {
	f.t.Helper()
	path = filepath.FromSlash(path)
	if err := f.fs.MkdirAll(filepath.Dir(path), 0700); err != nil {
		f.t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(f.fs, path, []byte(content), 0600); err != nil {
		f.t.Fatalf("failed to write %s: %v", path, err)
	}
}

// AddDir creates path and its parents. It fails the test on error.
func (f *TestFileSystem) AddDir(path string) {
	f.t.Helper()
	if err := f.fs.MkdirAll(filepath.FromSlash(path), 0700); err != nil {
		f.t.Fatalf("failed to create directory %s: %v", path, err)
	}
}
