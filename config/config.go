package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store backend types.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config represents the complete tracker configuration
type Config struct {
	Store    StoreConfig    `json:"store" yaml:"store"`
	Display  DisplayConfig  `json:"display" yaml:"display"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
}

// StoreConfig selects and locates the persistence backend
type StoreConfig struct {
	Type string `json:"type" yaml:"type"` // "json" or "sqlite"
	Path string `json:"path" yaml:"path"`
}

// DisplayConfig controls how sessions are rendered
type DisplayConfig struct {
	Currency string `json:"currency" yaml:"currency"`
	Color    bool   `json:"color" yaml:"color"`
}

// DefaultsConfig pre-fills fields the user usually repeats
type DefaultsConfig struct {
	Stakes string `json:"stakes,omitempty" yaml:"stakes,omitempty"`
}

// DefaultDir is where the tracker keeps its data and config unless told
// otherwise (~/.bankroll).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bankroll"
	}
	return filepath.Join(home, ".bankroll")
}

// DefaultConfigPath is the config file location used when no --config flag
// is given.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Type: StoreJSON,
			Path: filepath.Join(DefaultDir(), "sessions.json"),
		},
		Display: DisplayConfig{
			Currency: "$",
			Color:    true,
		},
		Defaults: DefaultsConfig{
			Stakes: "1/2",
		},
	}
}

// Load resolves the effective configuration. An empty path means the default
// location; a missing default file is not an error, it just yields defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return Default(), nil
	}

	return LoadFromFile(path)
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store.Type != StoreJSON && c.Store.Type != StoreSQLite {
		return fmt.Errorf("store.type must be %q or %q", StoreJSON, StoreSQLite)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Display.Currency == "" {
		return fmt.Errorf("display.currency is required")
	}
	return nil
}
