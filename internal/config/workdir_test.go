package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkdir_SaveAndLoad(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "workdir")
	target := t.TempDir()

	abs, err := saveWorkdir(stateFile, target)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	// The file holds the literal path string, no delimiters.
	data, err := os.ReadFile(stateFile)
	require.NoError(t, err)
	assert.Equal(t, abs, string(data))

	got, err := loadWorkdir(stateFile)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}

func TestLoadWorkdir_Unset(t *testing.T) {
	_, err := loadWorkdir(filepath.Join(t.TempDir(), "workdir"))
	assert.ErrorIs(t, err, ErrNoWorkdir)
}

func TestLoadWorkdir_Stale(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "workdir")
	target := t.TempDir()

	_, err := saveWorkdir(stateFile, target)
	require.NoError(t, err)

	// The saved directory vanished since the last session.
	require.NoError(t, os.Remove(target))

	_, err = loadWorkdir(stateFile)
	assert.ErrorIs(t, err, ErrWorkdirInvalid)
}

func TestSaveWorkdir_RejectsNonDirectory(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "workdir")

	_, err := saveWorkdir(stateFile, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, ErrWorkdirInvalid)

	plain := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0644))
	_, err = saveWorkdir(stateFile, plain)
	assert.ErrorIs(t, err, ErrWorkdirInvalid)
}

func TestDiscover_EnvOverride(t *testing.T) {
	path := writeConfig(t, `log_level = "info"`)
	t.Setenv("TIDY_CONFIG", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvOverrideMissing(t *testing.T) {
	t.Setenv("TIDY_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Discover()
	assert.Error(t, err)
}
