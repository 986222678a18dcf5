// ABOUTME: Configuration management for blogdeck with YAML config loading.
// ABOUTME: Handles server endpoint settings, UI tuning, and XDG path resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for UI tuning knobs when the config file leaves them unset.
const (
	DefaultCardMinWidth  = 38
	DefaultTriggerMargin = 12
	DefaultSearchPath    = "search/"
)

// Config stores blogdeck configuration loaded from ~/.config/blogdeck/config.yaml.
type Config struct {
	Server ServerConfig `yaml:"server"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds the blog endpoint settings.
type ServerConfig struct {
	BaseURL    string `yaml:"base_url"`
	SearchPath string `yaml:"search_path"`
}

// UIConfig holds layout and scroll tuning.
type UIConfig struct {
	CardMinWidth  int `yaml:"card_min_width"`
	TriggerMargin int `yaml:"trigger_margin"`
}

// LogConfig holds the optional log file override.
type LogConfig struct {
	Path string `yaml:"path"`
}

// HasServer returns true if a blog endpoint is configured.
func (c *Config) HasServer() bool {
	return c.Server.BaseURL != ""
}

// GetSearchPath returns the search endpoint path relative to the base URL.
func (c *Config) GetSearchPath() string {
	if c.Server.SearchPath != "" {
		return c.Server.SearchPath
	}
	return DefaultSearchPath
}

// GetCardMinWidth returns the minimum card width in terminal cells.
func (c *Config) GetCardMinWidth() int {
	if c.UI.CardMinWidth > 0 {
		return c.UI.CardMinWidth
	}
	return DefaultCardMinWidth
}

// GetTriggerMargin returns how many rows from the bottom trigger a load.
func (c *Config) GetTriggerMargin() int {
	if c.UI.TriggerMargin > 0 {
		return c.UI.TriggerMargin
	}
	return DefaultTriggerMargin
}

// GetLogPath returns the log file path, defaulting under the data dir.
func (c *Config) GetLogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "blogdeck.log"), nil
}

// DataDir returns the blogdeck data directory.
func DataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "blogdeck"), nil
}

// SavedPostsDir returns the directory used for locally saved posts.
func SavedPostsDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "saved"), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "blogdeck", "config.yaml"), nil
}

// Load reads config from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
