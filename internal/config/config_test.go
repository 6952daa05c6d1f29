package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/tabload/pkg/tabload"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `recursive: true
verbose: false
column_consistency: warning

export:
  output: combined.csv
  sqlite: data.db
  postgres: postgres://user@localhost/db
  table: sales
  replace: true
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.NotNil(t, cfg.Recursive)
	assert.True(t, *cfg.Recursive)
	require.NotNil(t, cfg.Verbose)
	assert.False(t, *cfg.Verbose)

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, tabload.PolicyWarning, policy)

	assert.Equal(t, "combined.csv", cfg.Export.Output)
	assert.Equal(t, "data.db", cfg.Export.SQLite)
	assert.Equal(t, "postgres://user@localhost/db", cfg.Export.Postgres)
	assert.Equal(t, "sales", cfg.Export.Table)
	assert.True(t, cfg.Export.Replace)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := writeConfig(t, "column_consistency: ignore\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Nil(t, cfg.Recursive)
	assert.Nil(t, cfg.Verbose)
	assert.Empty(t, cfg.Export.Output)

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, tabload.PolicyIgnore, policy)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, tabload.PolicyError, policy)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.ErrorIs(t, err, tabload.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "recursve: true\n"))
	assert.ErrorIs(t, err, tabload.ErrInvalidConfig)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad policy", "column_consistency: loose\n", "column consistency must be one of"},
		{"sqlite without table", "export:\n  sqlite: out.db\n", "export.table is required"},
		{"postgres without table", "export:\n  postgres: postgres://localhost/db\n", "export.table is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tabload.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recursive: true\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Recursive)
	assert.True(t, *cfg.Recursive)
}
