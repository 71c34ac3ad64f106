package handler

import (
	"fmt"

	"patchverk/internal/cli/output"
	"patchverk/internal/core"
)

type SystemsCommandHandler struct {
	systemEnumerator core.SystemEnumerator
}

func ProvideSystemsCommandHandler(systemEnumerator core.SystemEnumerator) SystemsCommandHandler {
	return SystemsCommandHandler{
		systemEnumerator: systemEnumerator,
	}
}

func (h *SystemsCommandHandler) Handle() error {
	systems, err := h.systemEnumerator.Enumerate()
	if err != nil {
		return err
	}

	if len(systems) == 0 {
		output.PrintWarning(fmt.Sprintf("No systems found in %s", h.systemEnumerator.PatchRoot()))
		return nil
	}

	output.PrintHeader(fmt.Sprintf("Systems in %s", h.systemEnumerator.PatchRoot()))
	for _, system := range systems {
		output.PrintBullet(system)
	}

	return nil
}
