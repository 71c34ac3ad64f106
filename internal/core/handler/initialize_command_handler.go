package handler

import (
	"patchverk/internal/cli/output"
	"patchverk/internal/core"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
	}
}

func (h *InitializeCommandHandler) Handle() error {
	if err := h.configRepository.InitConfig(); err != nil {
		return err
	}

	output.PrintSuccess("Configuration file created")
	return nil
}
