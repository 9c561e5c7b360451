package control

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiskFlag_InitCreatesFileWithDefault(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "enabled")
	f := NewDiskFlag(path)

	assert.NoError(f.Init(true))
	assert.True(f.Get())
}

func TestDiskFlag_InitDoesNotOverwriteExisting(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "sub", "enabled")
	f := NewDiskFlag(path)

	assert.NoError(f.Set(false))
	assert.NoError(f.Init(true))
	assert.False(f.Get())
}

func TestDiskFlag_MissingFileFailsOpen(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "does-not-exist")
	f := NewDiskFlag(path)

	assert.True(f.Get())
}

func TestDiskFlag_SetAndGetRoundTrip(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "enabled")
	f := NewDiskFlag(path)

	assert.NoError(f.Set(true))
	assert.True(f.Get())

	assert.NoError(f.Set(false))
	assert.False(f.Get())
}
