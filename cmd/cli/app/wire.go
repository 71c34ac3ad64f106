//go:build wireinject
// +build wireinject

package app

import (
	"patchverk/internal/adapters/container_orchestrator"
	"patchverk/internal/adapters/filesystem"
	"patchverk/internal/adapters/logging"
	"patchverk/internal/core"
	"patchverk/internal/core/domain"
	"patchverk/internal/core/handler"
	"patchverk/internal/ports"

	"github.com/google/wire"
)

// Adapter provides everything that talks to the outside world, except the cluster.
var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.AferoFileSystem)),
	logging.ProvideZapLogger,
	wire.Bind(new(ports.Logger), new(*logging.ZapLogger)),
)

// ClusterSet provides the cluster client. Only commands that reach the cluster depend on it,
// so plan and systems work without a kubeconfig.
var ClusterSet = wire.NewSet(
	container_orchestrator.ProvideKubernetes,
	wire.Bind(new(ports.ContainerOrchestrator), new(*container_orchestrator.Kubernetes)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideDirectiveDecoder,
	core.ProvideSystemEnumerator,
	core.ProvidePatchGenerator,
	core.ProvidePatchApplicator,
)

func InjectSystemEnumerator(overrides domain.ConfigOverrides) (core.SystemEnumerator, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.AferoFileSystem)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		core.ProvideSystemEnumerator,
	)
	return core.SystemEnumerator{}, nil
}

func InjectApplyCommandHandler(overrides domain.ConfigOverrides) (handler.ApplyCommandHandler, error) {
	wire.Build(
		Adapter,
		ClusterSet,
		CoreSet,
		handler.ProvideApplyCommandHandler,
	)
	return handler.ApplyCommandHandler{}, nil
}

func InjectPlanCommandHandler(overrides domain.ConfigOverrides) (handler.PlanCommandHandler, error) {
	wire.Build(
		Adapter,
		CoreSet,
		handler.ProvidePlanCommandHandler,
	)
	return handler.PlanCommandHandler{}, nil
}

func InjectSystemsCommandHandler(overrides domain.ConfigOverrides) (handler.SystemsCommandHandler, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.AferoFileSystem)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		core.ProvideSystemEnumerator,
		handler.ProvideSystemsCommandHandler,
	)
	return handler.SystemsCommandHandler{}, nil
}

func InjectInitializeCommandHandler(overrides domain.ConfigOverrides) (handler.InitializeCommandHandler, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.AferoFileSystem)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
