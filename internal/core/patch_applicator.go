package core

import (
	"context"

	"patchverk/internal/core/domain"
	"patchverk/internal/ports"
)

// ApplyObserver is notified around every patch call. index counts across all kinds.
type ApplyObserver interface {
	OperationStarted(index int, operation domain.PatchOperation)
	OperationCompleted(index int, operation domain.PatchOperation, err error)
}

// PatchApplicator applies a registry kind by kind. A failing operation is logged and skipped.
type PatchApplicator struct {
	containerOrchestrator ports.ContainerOrchestrator
	logger                ports.Logger
}

func ProvidePatchApplicator(
	containerOrchestrator ports.ContainerOrchestrator,
	logger ports.Logger,
) PatchApplicator {
	return PatchApplicator{
		containerOrchestrator: containerOrchestrator,
		logger:                logger,
	}
}

// PlannedOperations lists the operations Apply would issue, in the same order.
func PlannedOperations(registry *domain.PatchRegistry) []domain.PatchOperation {
	var operations []domain.PatchOperation
	for _, kind := range domain.AppliableKinds() {
		operations = append(operations, registry.Operations(kind)...)
	}
	return operations
}

// Apply issues one patch call per operation, sequentially. Only cancellation stops it early.
// ctx is checked before each call; a call in flight when ctx is cancelled may complete or fail.
func (a *PatchApplicator) Apply(
	ctx context.Context,
	registry *domain.PatchRegistry,
	observer ApplyObserver,
) (domain.ApplyReport, error) {
	var report domain.ApplyReport

	for i, operation := range PlannedOperations(registry) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if observer != nil {
			observer.OperationStarted(i, operation)
		}
		err := a.containerOrchestrator.PatchResource(ctx, operation)
		if err != nil {
			a.logger.Error(
				err,
				"failed to patch resource",
				"kind", operation.Kind,
				"namespace", operation.Namespace,
				"name", operation.ResourceName,
				"source", operation.Source,
			)
			report.Failed = append(report.Failed, operation.ID())
		} else {
			report.Applied++
		}
		if observer != nil {
			observer.OperationCompleted(i, operation, err)
		}
	}

	return report, nil
}
