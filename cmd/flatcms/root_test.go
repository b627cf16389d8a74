package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flatcms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":8080\"\ndata_dir: docs\n"), 0644))

	configPath = path
	t.Cleanup(func() { configPath = "" })

	cfg, base, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "docs", cfg.DataDir)
	assert.Equal(t, dir, base)
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatcms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nope: true\n"), 0644))

	configPath = path
	t.Cleanup(func() { configPath = "" })

	_, _, err := loadConfig()
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "list", "read", "write", "create", "delete", "hash-password", "status", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
