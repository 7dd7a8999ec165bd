// Package config loads shoplist settings.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (Default).
//  2. A YAML file, by default $XDG_CONFIG_HOME/shoplist/config.yaml. A
//     missing file is not an error.
//  3. SHOPLIST_* environment variables.
//  4. Command-line flags, applied by the cli package.
//
// Example file:
//
//	backend: sqlite
//	data_dir: ~/.local/share/shoplist
//	log_level: info
//	theme: neon
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/shoplist/internal/store"
)

const appName = "shoplist"

var (
	themes    = []string{"classic", "neon", "mono"}
	logLevels = []string{"debug", "info", "warn", "error", "off"}
)

type Config struct {
	// Backend is one of store.Backends().
	Backend string `yaml:"backend"`
	// DataDir holds the JSON files or the SQLite database.
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Theme    string `yaml:"theme"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Backend:  store.BackendJSON,
		DataDir:  defaultDataDir(),
		LogLevel: "info",
		LogFile:  defaultLogFile(),
		Theme:    "classic",
	}
}

// DefaultPath is where Load looks when no --config is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", appName+".yaml")
	}
	return filepath.Join(dir, appName, "config.yaml")
}

func defaultDataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", appName)
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, appName+".log")
}

// Load reads path over the defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	for env, dst := range map[string]*string{
		"SHOPLIST_BACKEND":   &c.Backend,
		"SHOPLIST_DATA_DIR":  &c.DataDir,
		"SHOPLIST_LOG_LEVEL": &c.LogLevel,
		"SHOPLIST_LOG_FILE":  &c.LogFile,
		"SHOPLIST_THEME":     &c.Theme,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
}

// Validate reports the first setting shoplist cannot work with.
func (c *Config) Validate() error {
	if !slices.Contains(store.Backends(), c.Backend) {
		return fmt.Errorf("%w: %q (want one of %s)", store.ErrUnknownBackend, c.Backend,
			strings.Join(store.Backends(), ", "))
	}
	if c.Backend != store.BackendMemory && c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !slices.Contains(themes, strings.ToLower(c.Theme)) {
		return fmt.Errorf("invalid theme %q", c.Theme)
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
