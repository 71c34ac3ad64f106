package handler

import (
	"context"
	"fmt"

	"patchverk/internal/cli/output"
	"patchverk/internal/core"
	"patchverk/internal/core/domain"
	"patchverk/internal/ports"
)

// PlanCommandHandler prints the operations an apply would issue without contacting the cluster.
type PlanCommandHandler struct {
	systemEnumerator core.SystemEnumerator
	patchGenerator   core.PatchGenerator
	logger           ports.Logger
}

func ProvidePlanCommandHandler(
	systemEnumerator core.SystemEnumerator,
	patchGenerator core.PatchGenerator,
	logger ports.Logger,
) PlanCommandHandler {
	return PlanCommandHandler{
		systemEnumerator: systemEnumerator,
		patchGenerator:   patchGenerator,
		logger:           logger,
	}
}

func (h *PlanCommandHandler) Handle(ctx context.Context, system string) error {
	exists, err := h.systemEnumerator.Exists(system)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", core.ErrUnknownSystem, system)
	}

	registry, err := h.patchGenerator.Generate(ctx, system)
	if err != nil {
		return err
	}
	h.logger.Debug("Generated patches", "system", system, "count", registry.Len())

	total := 0
	for _, kind := range domain.AppliableKinds() {
		operations := registry.Operations(kind)
		if len(operations) == 0 {
			continue
		}
		total += len(operations)

		output.PrintHeader(fmt.Sprintf("%s (%d)", kind, len(operations)))
		for _, operation := range operations {
			output.PrintBullet(fmt.Sprintf("%s/%s %s", operation.Namespace, operation.ResourceName, output.Dim(operation.Variant)))
			output.PrintSecondary(operation.Source)
		}
		output.PrintBlank()
	}

	if total == 0 {
		output.PrintWarning(fmt.Sprintf("No patches found for system %s", system))
		return nil
	}
	output.PrintInfo(fmt.Sprintf("%s would be applied to system %s", output.Count(total, "patch", "patches"), system))

	return nil
}
