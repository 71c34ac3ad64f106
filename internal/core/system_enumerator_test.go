package core

import (
	"testing"

	"patchverk/internal/core/domain"
	"patchverk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemEnumerator_EnumerateListsVisibleDirectories(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddDir("/patchverk/prod/patch")
	fileSystem.AddDir("/patchverk/staging/patch")
	fileSystem.AddDir("/patchverk/.git")
	fileSystem.AddFile("/patchverk/README.md", "# systems")
	sut := NewSystemEnumerator(fileSystem, "/patchverk")

	systems, err := sut.Enumerate()

	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "staging"}, systems)
}

func TestSystemEnumerator_EnumerateEmptyRoot(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddDir("/patchverk")
	sut := NewSystemEnumerator(fileSystem, "/patchverk")

	systems, err := sut.Enumerate()

	require.NoError(t, err)
	assert.Empty(t, systems)
}

func TestSystemEnumerator_EnumerateMissingRoot(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := NewSystemEnumerator(fileSystem, "/patchverk")

	_, err := sut.Enumerate()

	assert.ErrorContains(t, err, "/patchverk")
}

func TestSystemEnumerator_Exists(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	fileSystem.AddDir("/patchverk/prod")
	fileSystem.AddDir("/patchverk/.hidden")
	sut := NewSystemEnumerator(fileSystem, "/patchverk")

	exists, err := sut.Exists("prod")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = sut.Exists(".hidden")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = sut.Exists("unknown")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProvideSystemEnumerator_UsesConfiguredPatchRoot(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	configRepository.On("LoadConfig").Return(&domain.Config{PatchRoot: "/srv/patches"}, nil)

	sut, err := ProvideSystemEnumerator(testutil.NewTestFileSystem(t), configRepository)

	require.NoError(t, err)
	assert.Equal(t, "/srv/patches", sut.PatchRoot())
	configRepository.AssertExpectations(t)
}
