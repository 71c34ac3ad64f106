package core

import (
	"fmt"
	"strings"

	"patchverk/internal/core/domain"
	"patchverk/internal/ports"

	"k8s.io/apimachinery/pkg/util/validation"
)

// DirectiveDecoder turns a patch file path of the form
// .../<kind>/<namespace>/<resourceName>.<variant> into a PatchDirective.
type DirectiveDecoder struct {
	fileSystem ports.FileSystem
	logger     ports.Logger
}

func ProvideDirectiveDecoder(fileSystem ports.FileSystem, logger ports.Logger) DirectiveDecoder {
	return DirectiveDecoder{
		fileSystem: fileSystem,
		logger:     logger,
	}
}

// Decode returns nil without an error for files that must be skipped:
// unsupported kinds (logged as a warning) and default variants.
func (d *DirectiveDecoder) Decode(path string) (*domain.PatchDirective, error) {
	segments := splitPath(path)
	if len(segments) < 3 {
		return nil, fmt.Errorf("%w: %s does not match <kind>/<namespace>/<name>.<variant>", ErrMalformedDirective, path)
	}
	segments = segments[len(segments)-3:]

	kind, typed := domain.LookupKind(segments[0])
	if !typed || !kind.IsAppliable() {
		d.logger.Warn(fmt.Sprintf("%s patching is not supported yet", segments[0]), "path", path)
		return nil, nil
	}

	resourceName, variant, err := splitFileName(segments[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDirective, path, err)
	}
	if variant == domain.DefaultVariant {
		return nil, nil
	}

	namespace := segments[1]
	if errs := validation.IsDNS1123Label(namespace); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: invalid namespace '%s': %s", ErrMalformedDirective, path, namespace, strings.Join(errs, ", "))
	}
	if errs := validation.IsDNS1123Subdomain(resourceName); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: invalid resource name '%s': %s", ErrMalformedDirective, path, resourceName, strings.Join(errs, ", "))
	}

	payload, err := d.fileSystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch file %s: %w", path, err)
	}

	return &domain.PatchDirective{
		Kind:         kind,
		Namespace:    namespace,
		ResourceName: resourceName,
		Variant:      variant,
		Path:         path,
		Payload:      payload,
	}, nil
}

// splitPath splits on both separator styles so the result does not depend on the OS that produced the path.
func splitPath(path string) []string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	var segments []string
	for _, segment := range strings.Split(normalized, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// splitFileName splits at the last dot, so resource names may contain dots themselves.
func splitFileName(fileName string) (string, string, error) {
	i := strings.LastIndex(fileName, ".")
	if i < 0 {
		return "", "", fmt.Errorf("file name '%s' has no variant", fileName)
	}
	resourceName, variant := fileName[:i], fileName[i+1:]
	if resourceName == "" {
		return "", "", fmt.Errorf("file name '%s' has no resource name", fileName)
	}
	if variant == "" {
		return "", "", fmt.Errorf("file name '%s' has an empty variant", fileName)
	}
	return resourceName, variant, nil
}
