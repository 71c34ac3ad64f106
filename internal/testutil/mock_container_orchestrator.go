package testutil

import (
	"context"

	"patchverk/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockContainerOrchestrator struct {
	mock.Mock
}

func (m *MockContainerOrchestrator) ServerVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockContainerOrchestrator) PatchResource(ctx context.Context, operation domain.PatchOperation) error {
	args := m.Called(ctx, operation)
	return args.Error(0)
}
