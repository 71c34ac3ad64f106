package core

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"patchverk/internal/core/domain"
	"patchverk/internal/ports"

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/yaml"
)

const patchFolderName = "patch"

// PatchGenerator builds the patch registry of a system from its patch folder.
type PatchGenerator struct {
	fileSystem ports.FileSystem
	decoder    DirectiveDecoder
	logger     ports.Logger
	patchRoot  string
}

func ProvidePatchGenerator(
	fileSystem ports.FileSystem,
	decoder DirectiveDecoder,
	logger ports.Logger,
	configRepository ConfigRepository,
) (PatchGenerator, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return PatchGenerator{}, err
	}
	return NewPatchGenerator(fileSystem, decoder, logger, config.PatchRoot), nil
}

func NewPatchGenerator(
	fileSystem ports.FileSystem,
	decoder DirectiveDecoder,
	logger ports.Logger,
	patchRoot string,
) PatchGenerator {
	return PatchGenerator{
		fileSystem: fileSystem,
		decoder:    decoder,
		logger:     logger,
		patchRoot:  patchRoot,
	}
}

// PatchFolder returns <patch-root>/<system>/patch.
func (g *PatchGenerator) PatchFolder(system string) string {
	return filepath.Join(g.patchRoot, system, patchFolderName)
}

// Generate walks the system's patch folder and returns the decoded operations grouped by kind.
// Any payload that cannot be bound to its schema aborts generation.
func (g *PatchGenerator) Generate(ctx context.Context, system string) (*domain.PatchRegistry, error) {
	patchFolder := g.PatchFolder(system)
	exists, err := g.fileSystem.FileExists(patchFolder)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s has no %s folder", ErrUnknownSystem, system, patchFolderName)
	}

	registry := domain.NewPatchRegistry()
	// walkRoot is the patch folder as the file system resolved it, e.g. with ~ expanded.
	var walkRoot string
	err = g.fileSystem.Walk(patchFolder, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkRoot == "" {
			walkRoot = path
		}
		hidden := strings.HasPrefix(info.Name(), ".")
		if info.IsDir() {
			if hidden && path != walkRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		relativePath, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		if len(splitPath(relativePath)) != 3 {
			g.logger.Warn("unexpected patch layout, expected <kind>/<namespace>/<name>.<variant>", "path", path)
			return nil
		}

		directive, err := g.decoder.Decode(path)
		if err != nil {
			return err
		}
		if directive == nil {
			return nil
		}

		operation, err := BindDirective(*directive)
		if err != nil {
			return err
		}
		return registry.Add(operation)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate patches for system %s: %w", system, err)
	}

	return registry, nil
}

// BindDirective binds the payload to the kind's schema and wraps it as a strategic merge patch.
// The patch document keeps only the fields written in the file.
func BindDirective(directive domain.PatchDirective) (domain.PatchOperation, error) {
	object, err := directive.Kind.Decode(directive.Payload)
	if err != nil {
		return domain.PatchOperation{}, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, directive.Path, err)
	}

	document, err := yaml.YAMLToJSON(directive.Payload)
	if err != nil {
		return domain.PatchOperation{}, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, directive.Path, err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(document), []byte("{")) {
		return domain.PatchOperation{}, fmt.Errorf("%w: %s: payload must be an object", ErrInvalidPayload, directive.Path)
	}

	return domain.PatchOperation{
		Kind:         directive.Kind,
		Namespace:    directive.Namespace,
		ResourceName: directive.ResourceName,
		Variant:      directive.Variant,
		Source:       directive.Path,
		Object:       object,
		Patch:        document,
		PatchType:    types.StrategicMergePatchType,
	}, nil
}
