// ABOUTME: weartrack configuration management.
// ABOUTME: JSON config at the XDG config path with env-var overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"weartrack/internal/storage"
)

// EnvDataDir overrides the data directory when set (also honored from a
// .env file loaded by the CLI).
const EnvDataDir = "WEARTRACK_DATA_DIR"

// Config stores weartrack configuration.
type Config struct {
	// DataDir is the root directory for data storage; weartrack.db lives
	// here. Supports ~ expansion. Defaults to ~/.local/share/weartrack.
	DataDir string `json:"data_dir,omitempty"`
}

// GetDataDir returns the effective data directory: env override first, then
// the configured value with ~ expanded, then the XDG default.
func (c *Config) GetDataDir() string {
	if env := os.Getenv(EnvDataDir); env != "" {
		return ExpandPath(env)
	}
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the database file path under the effective data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "weartrack.db")
}

// OpenStorage opens the SQLite repository at the configured location.
func (c *Config) OpenStorage() (storage.Repository, error) {
	repo, err := storage.Open(c.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return repo, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "weartrack", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
