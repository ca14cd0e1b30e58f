package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[categories]
heic = "Images"
epub = "Documents"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Images", cfg.Categories["heic"])
	assert.Equal(t, "Documents", cfg.Categories["epub"])
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Categories)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("TIDY_TEST_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, `log_level = "${TIDY_TEST_LEVEL}"`))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EnvSubstitution_MissingVarLeftAlone(t *testing.T) {
	cfg, err := Load(writeConfig(t, `log_level = "${TIDY_TEST_UNSET_VAR}"`))
	require.NoError(t, err)
	assert.Equal(t, "${TIDY_TEST_UNSET_VAR}", cfg.LogLevel)
}

func TestLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.Level(), "level %q", in)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{LogLevel: "info", Categories: map[string]string{".heic": "Images"}}
	assert.Empty(t, valid.Validate())

	badLevel := &Config{LogLevel: "loud"}
	assert.Len(t, badLevel.Validate(), 1)

	badCategory := &Config{Categories: map[string]string{".foo": "Junk"}}
	errs := badCategory.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "categories")
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Validate())
}

func TestWrite_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{LogLevel: "debug", Categories: map[string]string{"heic": "Images"}}
	require.NoError(t, cfg.Write(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.LogLevel, got.LogLevel)
	assert.Equal(t, cfg.Categories, got.Categories)
}
