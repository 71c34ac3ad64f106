package core

import (
	"context"
	"errors"
	"testing"

	"patchverk/internal/core/domain"
	"patchverk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
)

func newTestPatchGenerator(fileSystem *testutil.TestFileSystem) (PatchGenerator, *observer.ObservedLogs) {
	logger, logs := testutil.NewObservedLogger()
	decoder := ProvideDirectiveDecoder(fileSystem, logger)
	return NewPatchGenerator(fileSystem, decoder, logger, "/patchverk"), logs
}

func TestPatchGenerator_GenerateSingleConfigmapPatch(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Configmap/ns1/cm1.v1", `{"data":{"key":"value"}}`)
	sut, _ := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
	operations := registry.Operations(domain.Configmap)
	require.Len(t, operations, 1)
	operation := operations[0]
	assert.Equal(t, domain.Configmap, operation.Kind)
	assert.Equal(t, "ns1", operation.Namespace)
	assert.Equal(t, "cm1", operation.ResourceName)
	assert.Equal(t, "v1", operation.Variant)
	assert.Equal(t, types.StrategicMergePatchType, operation.PatchType)
	assert.JSONEq(t, `{"data":{"key":"value"}}`, string(operation.Patch))
	assert.Equal(t, "value", operation.Object.(*corev1.ConfigMap).Data["key"])
}

func TestPatchGenerator_GenerateSkipsDefaultVariant(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/app1.default", `{"spec":{"replicas":1}}`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/app2.default", `not even json`)
	sut, _ := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	assert.Equal(t, 0, registry.Len())
}

func TestPatchGenerator_GenerateSkipsUnsupportedKindAndContinues(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Widget/ns1/foo.v1", `{"spec":{}}`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/app1.v1", `{"spec":{"replicas":2}}`)
	sut, logs := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
	assert.Len(t, registry.Operations(domain.Deployment), 1)
	assert.Equal(t, 1, logs.FilterMessage("Widget patching is not supported yet").Len())
}

func TestPatchGenerator_GenerateFailsOnMalformedPayload(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/app1.v1", `{"spec":{"replicas":2}}`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/app2.v1", `{"spec":`)
	sut, _ := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "app2.v1")
	assert.Nil(t, registry)
}

func TestPatchGenerator_GenerateFailsOnPayloadNotMatchingSchema(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Statefulset/ns1/db.v1", `{"spec":{"replicas":"many"}}`)
	sut, _ := newTestPatchGenerator(fileSystem)

	_, err := sut.Generate(context.Background(), "prod")

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPatchGenerator_GenerateFailsOnEmptyPayload(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Configmap/ns1/cm1.v1", ``)
	sut, _ := newTestPatchGenerator(fileSystem)

	_, err := sut.Generate(context.Background(), "prod")

	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPatchGenerator_GenerateFailsOnMalformedDirective(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Configmap/ns1/cm1", `{}`)
	sut, _ := newTestPatchGenerator(fileSystem)

	_, err := sut.Generate(context.Background(), "prod")

	assert.ErrorIs(t, err, ErrMalformedDirective)
}

func TestPatchGenerator_GenerateGroupsByKindInTraversalOrder(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns2/c.v1", `{}`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/b.v1", `{}`)
	fileSystem.AddFile("/patchverk/prod/patch/Configmap/ns1/cm.v1", `{}`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/a.v1", `{}`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/a.v2", `{"spec":{"paused":true}}`)
	sut, _ := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	assert.Equal(t, 5, registry.Len())
	var deployments []string
	for _, operation := range registry.Operations(domain.Deployment) {
		assert.Equal(t, domain.Deployment, operation.Kind)
		deployments = append(deployments, operation.Namespace+"/"+operation.ResourceName+"."+operation.Variant)
	}
	assert.Equal(t, []string{"ns1/a.v1", "ns1/a.v2", "ns1/b.v1", "ns2/c.v1"}, deployments)
	assert.Len(t, registry.Operations(domain.Configmap), 1)
	assert.True(t, registry.Operations(domain.Deployment)[1].Object.(*appsv1.Deployment).Spec.Paused)
}

func TestPatchGenerator_GenerateWarnsAboutUnexpectedLayout(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/README.md", `# notes`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/nested/app1.v1", `{}`)
	sut, logs := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestPatchGenerator_GenerateIgnoresHiddenEntries(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/.git/Deployment/ns1/app1.v1", `{`)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/.app1.v1.swp", `{`)
	sut, logs := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, 0, logs.Len())
}

func TestPatchGenerator_GenerateOnlyReadsRequestedSystem(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/app1.v1", `{}`)
	fileSystem.AddFile("/patchverk/test/patch/Deployment/ns1/app1.v1", `{`)
	sut, _ := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
}

func TestPatchGenerator_GenerateResolvesHomeRelativePatchRoot(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/home/tester/patches/prod/patch/Configmap/ns1/cm1.v1", `{"data":{"key":"value"}}`)
	fileSystem.AddFile("/home/tester/patches/prod/patch/.hidden/Configmap/ns1/cm2.v1", `{`)
	logger, logs := testutil.NewObservedLogger()
	sut := NewPatchGenerator(fileSystem, ProvideDirectiveDecoder(fileSystem, logger), logger, "~/patches")
	systems := NewSystemEnumerator(fileSystem, "~/patches")

	exists, err := systems.Exists("prod")
	require.NoError(t, err)
	require.True(t, exists)
	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	operations := registry.Operations(domain.Configmap)
	require.Len(t, operations, 1)
	assert.Equal(t, "cm1", operations[0].ResourceName)
	assert.Equal(t, "/home/tester/patches/prod/patch/Configmap/ns1/cm1.v1", operations[0].Source)
	assert.Equal(t, 0, logs.Len())
}

func TestPatchGenerator_GenerateFailsWithoutPatchFolder(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddDir("/patchverk/prod/other")
	sut, _ := newTestPatchGenerator(fileSystem)

	_, err := sut.Generate(context.Background(), "prod")

	assert.ErrorIs(t, err, ErrUnknownSystem)
}

func TestPatchGenerator_GenerateStopsWhenCancelled(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Deployment/ns1/app1.v1", `{}`)
	sut, _ := newTestPatchGenerator(fileSystem)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sut.Generate(ctx, "prod")

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPatchGenerator_GenerateAcceptsYamlPayload(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddFile("/patchverk/prod/patch/Daemonset/kube-system/agent.v1", "metadata:\n  labels:\n    tier: node\n")
	sut, _ := newTestPatchGenerator(fileSystem)

	registry, err := sut.Generate(context.Background(), "prod")

	require.NoError(t, err)
	operations := registry.Operations(domain.Daemonset)
	require.Len(t, operations, 1)
	assert.JSONEq(t, `{"metadata":{"labels":{"tier":"node"}}}`, string(operations[0].Patch))
}

func TestProvidePatchGenerator_UsesConfiguredPatchRoot(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	logger, _ := testutil.NewObservedLogger()
	configRepository := new(testutil.MockConfigRepository)
	configRepository.On("LoadConfig").Return(&domain.Config{PatchRoot: "/srv/patches"}, nil)

	sut, err := ProvidePatchGenerator(fileSystem, ProvideDirectiveDecoder(fileSystem, logger), logger, configRepository)

	require.NoError(t, err)
	assert.Equal(t, "/srv/patches/prod/patch", sut.PatchFolder("prod"))
}

func TestBindDirective_PatchContainsOnlyAuthoredFields(t *testing.T) {
	operation, err := BindDirective(domain.PatchDirective{
		Kind:         domain.Deployment,
		Namespace:    "ns1",
		ResourceName: "app1",
		Variant:      "v1",
		Path:         "Deployment/ns1/app1.v1",
		Payload:      []byte(`{"spec":{"replicas":3}}`),
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"spec":{"replicas":3}}`, string(operation.Patch))
	assert.Equal(t, "Deployment/ns1/app1.v1", operation.Source)
	assert.Equal(t, int32(3), *operation.Object.(*appsv1.Deployment).Spec.Replicas)
}
