package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: sqlite
  sqlite: /var/lib/bookstore/store.db
chart:
  output: out.html
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/bookstore/store.db", cfg.Storage.SQLite)
	assert.Equal(t, "out.html", cfg.Chart.Output)

	// Omitted fields keep their defaults.
	assert.Equal(t, "inventory.csv", cfg.Storage.Inventory)
	assert.Equal(t, "sales.csv", cfg.Storage.Sales)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: postgres
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_RejectsEmptyPath(t *testing.T) {
	path := writeConfig(t, `
storage:
  inventory: ""
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "storage: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
}
