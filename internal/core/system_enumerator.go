package core

import (
	"fmt"
	"slices"
	"strings"

	"patchverk/internal/ports"
)

// SystemEnumerator lists the systems configured below the patch root.
type SystemEnumerator struct {
	fileSystem ports.FileSystem
	patchRoot  string
}

func ProvideSystemEnumerator(fileSystem ports.FileSystem, configRepository ConfigRepository) (SystemEnumerator, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return SystemEnumerator{}, err
	}
	return NewSystemEnumerator(fileSystem, config.PatchRoot), nil
}

func NewSystemEnumerator(fileSystem ports.FileSystem, patchRoot string) SystemEnumerator {
	return SystemEnumerator{
		fileSystem: fileSystem,
		patchRoot:  patchRoot,
	}
}

// Enumerate returns the sorted names of the non-hidden top level directories of the patch root.
func (e *SystemEnumerator) Enumerate() ([]string, error) {
	entries, err := e.fileSystem.ReadDir(e.patchRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch root %s: %w", e.patchRoot, err)
	}

	systems := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		systems = append(systems, entry.Name())
	}
	slices.Sort(systems)

	return systems, nil
}

func (e *SystemEnumerator) Exists(system string) (bool, error) {
	systems, err := e.Enumerate()
	if err != nil {
		return false, err
	}
	return slices.Contains(systems, system), nil
}

func (e *SystemEnumerator) PatchRoot() string {
	return e.patchRoot
}
