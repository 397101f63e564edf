package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Templates.Dir)
	assert.Equal(t, []string{"_*"}, cfg.Templates.Ignore)
	assert.Equal(t, ".md", cfg.Notes.Extension)
	assert.Equal(t, "general", cfg.Notes.DefaultType)
	assert.Equal(t, "", cfg.Vault.Path)
	assert.True(t, cfg.Suggestions.Enabled)
}

func TestLoadUserConfigOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	configFile := filepath.Join(tmpDir, "config.yml")
	err := os.WriteFile(configFile, []byte(`
templates:
  dir: /opt/templates
  ignore:
    - "_*"
    - "archived-*"

notes:
  default_type: journal
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "/opt/templates", cfg.Templates.Dir)
	assert.Equal(t, []string{"_*", "archived-*"}, cfg.Templates.Ignore)
	assert.Equal(t, "journal", cfg.Notes.DefaultType)

	// Untouched keys keep their defaults
	assert.Equal(t, ".md", cfg.Notes.Extension)
	assert.True(t, cfg.Suggestions.Enabled)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)

	assert.Equal(t, "general", cfg.Notes.DefaultType)
}

func TestLoadEnvOverridesAll(t *testing.T) {
	tmpDir := t.TempDir()

	configFile := filepath.Join(tmpDir, "config.yml")
	err := os.WriteFile(configFile, []byte(`
templates:
  dir: /opt/templates
`), 0644)
	require.NoError(t, err)

	t.Setenv("FLINT_NOTE_TEMPLATES_DIR", "/env/templates")
	t.Setenv("FLINT_NOTE_SUGGESTIONS_ENABLED", "false")

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "/env/templates", cfg.Templates.Dir)
	assert.False(t, cfg.Suggestions.Enabled)
}

func TestLoadMalformedConfigFails(t *testing.T) {
	tmpDir := t.TempDir()

	configFile := filepath.Join(tmpDir, "config.yml")
	err := os.WriteFile(configFile, []byte("templates: [not: valid"), 0644)
	require.NoError(t, err)

	_, err = Load(configFile)
	assert.Error(t, err)
}
