package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monitorctl/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "ddcutil", cfg.Binary)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.StatusFeatures)
}

func TestLoad_NoImplicitFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "binary: /usr/local/bin/ddcutil\ntimeout: 5s\nstatus_features:\n  - brightness\n  - contrast\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/ddcutil", cfg.Binary)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"brightness", "contrast"}, cfg.StatusFeatures)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 3s\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "ddcutil", cfg.Binary)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoad_ExplicitMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_ImplicitFileInHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", ConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("binary: ddcutil-git\n"), 0o644))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "ddcutil-git", cfg.Binary)
}
