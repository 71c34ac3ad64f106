package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperation(kind ResourceKind, name string) PatchOperation {
	return PatchOperation{
		Kind:         kind,
		Namespace:    "ns1",
		ResourceName: name,
	}
}

func TestPatchRegistry_GroupsByKindInInsertionOrder(t *testing.T) {
	registry := NewPatchRegistry()
	require.NoError(t, registry.Add(newOperation(Deployment, "b")))
	require.NoError(t, registry.Add(newOperation(Configmap, "cm")))
	require.NoError(t, registry.Add(newOperation(Deployment, "a")))

	deployments := registry.Operations(Deployment)
	assert.Len(t, deployments, 2)
	assert.Equal(t, "b", deployments[0].ResourceName)
	assert.Equal(t, "a", deployments[1].ResourceName)
	assert.Len(t, registry.Operations(Configmap), 1)
	assert.Empty(t, registry.Operations(Statefulset))
	assert.Equal(t, 3, registry.Len())
}

func TestPatchRegistry_RejectsUnknownKind(t *testing.T) {
	registry := NewPatchRegistry()

	err := registry.Add(newOperation("Widget", "foo"))

	assert.Error(t, err)
	assert.Equal(t, 0, registry.Len())
}

func TestPatchRegistry_OperationsReturnsCopy(t *testing.T) {
	registry := NewPatchRegistry()
	require.NoError(t, registry.Add(newOperation(Deployment, "app")))

	operations := registry.Operations(Deployment)
	operations[0].ResourceName = "changed"

	assert.Equal(t, "app", registry.Operations(Deployment)[0].ResourceName)
}

func TestPatchOperation_ID(t *testing.T) {
	assert.Equal(t, "Deployment ns1/app1", newOperation(Deployment, "app1").ID())
}

func TestApplyReport_Total(t *testing.T) {
	report := ApplyReport{Applied: 2, Failed: []string{"Deployment ns1/app1"}}
	assert.Equal(t, 3, report.Total())
}
