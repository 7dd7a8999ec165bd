package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/shoplist/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SHOPLIST_BACKEND", "SHOPLIST_DATA_DIR", "SHOPLIST_LOG_LEVEL", "SHOPLIST_LOG_FILE", "SHOPLIST_THEME"} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, store.BackendJSON, cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "classic", cfg.Theme)
	assert.NotEmpty(t, cfg.DataDir)
	assert.NotEmpty(t, cfg.LogFile)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Backend = store.BackendSQLite
	cfg.DataDir = "/tmp/shop"
	cfg.Theme = "neon"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: memory\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, store.BackendMemory, cfg.Backend)
	assert.Equal(t, Default().Theme, cfg.Theme)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: memory\ntheme: neon\n"), 0o644))
	t.Setenv("SHOPLIST_BACKEND", "sqlite")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, store.BackendSQLite, cfg.Backend)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SHOPLIST_DATA_DIR", "~/lists")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "lists"), cfg.DataDir)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [oops"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown backend", func(c *Config) { c.Backend = "redis" }, true},
		{"memory needs no dir", func(c *Config) { c.Backend = store.BackendMemory; c.DataDir = "" }, false},
		{"json needs dir", func(c *Config) { c.DataDir = "" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"level is case-insensitive", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"bad theme", func(c *Config) { c.Theme = "pink" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_UnknownBackendIsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Backend = "redis"
	assert.ErrorIs(t, cfg.Validate(), store.ErrUnknownBackend)
}
