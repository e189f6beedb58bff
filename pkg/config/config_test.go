package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptionalParses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loom.yaml", `
adapter:
  name: console
  id: example.console
engine:
  verbose_errors: true
  enforce_affinity: false
`)
	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Adapter.Name)
	assert.Equal(t, "example.console", cfg.Adapter.ID)
	assert.True(t, cfg.Engine.VerboseErrors)
	require.NotNil(t, cfg.Engine.EnforceAffinity)
	assert.False(t, *cfg.Engine.EnforceAffinity)
}

func TestLoadOptionalRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "loom.yaml", "adapter: [")
	_, err := LoadOptional(dir)
	require.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/apps/console\n\ngo 1.24.0\n")

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/apps/console", r.ModulePath)
	assert.Equal(t, "console", r.AdapterName)
	assert.Equal(t, "example.com.apps.console", r.AdapterID)
	assert.True(t, r.EnforceAffinity)
	assert.False(t, r.VerboseErrors)
}

func TestResolveExplicitValuesWin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/apps/console\n\ngo 1.24.0\n")
	writeFile(t, dir, "loom.yaml", `
adapter:
  name: kiosk
  id: com.example.kiosk
engine:
  enforce_affinity: false
`)

	r, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "kiosk", r.AdapterName)
	assert.Equal(t, "com.example.kiosk", r.AdapterID)
	assert.False(t, r.EnforceAffinity)
}

func TestResolveWithoutGoMod(t *testing.T) {
	_, err := Resolve(t.TempDir())
	require.Error(t, err)
}
