package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"patchverk/internal/ports"

	"github.com/spf13/afero"
)

var _ ports.FileSystem = (*AferoFileSystem)(nil)

// AferoFileSystem implements ports.FileSystem on top of an afero.Fs.
type AferoFileSystem struct {
	fs afero.Fs
}

func ProvideOsFileSystem() *AferoFileSystem {
	return NewAferoFileSystem(afero.NewOsFs())
}

func NewAferoFileSystem(fs afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{fs: fs}
}

func (f *AferoFileSystem) ReadFile(path string) ([]byte, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	return afero.ReadFile(f.fs, path)
}

func (f *AferoFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := f.fs.MkdirAll(filepath.Dir(path), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := afero.WriteFile(f.fs, path, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *AferoFileSystem) FileExists(path string) (bool, error) {
	path, err := expandHome(path)
	if err != nil {
		return false, err
	}

	exists, err := afero.Exists(f.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check if file exists: %w", err)
	}
	return exists, nil
}

func (f *AferoFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	return afero.ReadDir(f.fs, path)
}

func (f *AferoFileSystem) Walk(root string, walkFn filepath.WalkFunc) error {
	root, err := expandHome(root)
	if err != nil {
		return err
	}

	return afero.Walk(f.fs, root, walkFn)
}

func expandHome(path string) (string, error) {
	if len(path) == 0 || path[:1] != "~" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}
