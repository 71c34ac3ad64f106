package handler

import (
	"context"
	"fmt"

	"patchverk/internal/cli/output"
	"patchverk/internal/cli/progress"
	"patchverk/internal/core"
	"patchverk/internal/core/domain"
	"patchverk/internal/ports"
)

// ApplyCommandHandler runs a full patch run: connectivity check, system validation,
// generation and application. Every stage before application is all-or-nothing.
type ApplyCommandHandler struct {
	containerOrchestrator ports.ContainerOrchestrator
	systemEnumerator      core.SystemEnumerator
	patchGenerator        core.PatchGenerator
	patchApplicator       core.PatchApplicator
	logger                ports.Logger
	newTracker            func([]domain.PatchOperation) applyTracker
}

type applyTracker interface {
	core.ApplyObserver
	Start()
	Stop()
}

func ProvideApplyCommandHandler(
	containerOrchestrator ports.ContainerOrchestrator,
	systemEnumerator core.SystemEnumerator,
	patchGenerator core.PatchGenerator,
	patchApplicator core.PatchApplicator,
	logger ports.Logger,
) ApplyCommandHandler {
	return ApplyCommandHandler{
		containerOrchestrator: containerOrchestrator,
		systemEnumerator:      systemEnumerator,
		patchGenerator:        patchGenerator,
		patchApplicator:       patchApplicator,
		logger:                logger,
		newTracker: func(operations []domain.PatchOperation) applyTracker {
			return progress.NewTracker(operations)
		},
	}
}

func (h *ApplyCommandHandler) Handle(ctx context.Context, system string) error {
	h.logger.Info("Checking cluster connectivity")
	serverVersion, err := h.containerOrchestrator.ServerVersion(ctx)
	if err != nil {
		h.logger.Error(err, "Error during version check, will not proceed")
		return fmt.Errorf("%w: %v", core.ErrClusterUnreachable, err)
	}
	h.logger.Debug("Cluster reachable", "version", serverVersion)
	if err := ctx.Err(); err != nil {
		return err
	}

	h.logger.Info("Enumerating systems")
	exists, err := h.systemEnumerator.Exists(system)
	if err != nil {
		h.logger.Error(err, "Failed to enumerate systems, will not proceed")
		return err
	}
	if !exists {
		h.logger.Error(core.ErrUnknownSystem, "No patches were detected for the provided system name, will not proceed", "system", system)
		return fmt.Errorf("%w: %s", core.ErrUnknownSystem, system)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	h.logger.Info("Generating patches", "system", system)
	registry, err := h.patchGenerator.Generate(ctx, system)
	if err != nil {
		h.logger.Error(err, "Patch generation failed, will not proceed", "system", system)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	operations := core.PlannedOperations(registry)
	if len(operations) == 0 {
		h.logger.Info("Patches applied", "applied", 0, "failed", 0)
		output.PrintWarning(fmt.Sprintf("No patches found for system %s", system))
		return nil
	}

	h.logger.Info("Applying patches", "count", len(operations))
	output.PrintHeader(fmt.Sprintf("Patching system %s", system))
	output.PrintBlank()

	tracker := h.newTracker(operations)
	tracker.Start()
	report, err := h.patchApplicator.Apply(ctx, registry, tracker)
	tracker.Stop()
	if err != nil {
		return err
	}

	h.logger.Info("Patches applied", "applied", report.Applied, "failed", len(report.Failed))
	output.PrintBlank()
	if len(report.Failed) > 0 {
		output.PrintWarning(fmt.Sprintf(
			"Applied %d of %s, %d failed",
			report.Applied,
			output.Count(report.Total(), "patch", "patches"),
			len(report.Failed),
		))
		for _, id := range report.Failed {
			output.PrintSecondary(id)
		}
		return nil
	}
	output.PrintSuccess(fmt.Sprintf("Applied %s", output.Count(report.Applied, "patch", "patches")))

	return nil
}
