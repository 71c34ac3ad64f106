package ports

import (
	"os"
	"path/filepath"
)

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	FileExists(path string) (bool, error)
	// ReadDir returns the entries of a directory sorted by name.
	ReadDir(path string) ([]os.FileInfo, error)
	// Walk visits every file and directory below root in lexical order.
	Walk(root string, walkFn filepath.WalkFunc) error
}
