package ports

import (
	"context"

	"patchverk/internal/core/domain"
)

type ContainerOrchestrator interface {
	// ServerVersion probes the API server. An error means the cluster is unreachable.
	ServerVersion(ctx context.Context) (string, error)
	// PatchResource patches the named, namespaced resource with the operation's patch document.
	// Kinds that are not appliable return an error.
	PatchResource(ctx context.Context, operation domain.PatchOperation) error
}
