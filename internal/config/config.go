// Package config loads and saves the CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration
type Config struct {
	// Default output format (text, json, ndjson/jsonl, table, yaml)
	Output string `yaml:"output,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Companion document updated after CSV conversions
	Doc string `yaml:"doc,omitempty"`

	// Heading of the section replaced in the companion document
	DocHeading string `yaml:"doc_heading,omitempty"`

	// Input used by csv2md when no arguments are given
	DefaultCSV string `yaml:"default_csv,omitempty"`

	// Input used by md2csv when no arguments are given
	DefaultMD string `yaml:"default_md,omitempty"`

	// Whether default-file and preview conversions update the companion
	// document; nil means enabled
	UpdateDoc *bool `yaml:"update_doc,omitempty"`
}

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/table-cli/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "table-cli", "config.yaml"), nil
}

// DefaultConfigPath returns ~/.config/table-cli/config.yaml
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil // Return empty config if file doesn't exist
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath saves config to a specific path
func (c *Config) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// GetOutput returns the configured output format, or empty for the default.
func (c *Config) GetOutput() string {
	return c.Output
}

// GetColor returns the configured color mode, or empty for auto.
func (c *Config) GetColor() string {
	return c.Color
}

// GetDoc returns the companion document path (default README.md).
func (c *Config) GetDoc() string {
	if c.Doc != "" {
		return c.Doc
	}
	return "README.md"
}

// GetDocHeading returns the heading of the spliced section (default "## Preview").
func (c *Config) GetDocHeading() string {
	if c.DocHeading != "" {
		return c.DocHeading
	}
	return "## Preview"
}

// GetDefaultCSV returns the default csv2md input (default preview.csv).
func (c *Config) GetDefaultCSV() string {
	if c.DefaultCSV != "" {
		return c.DefaultCSV
	}
	return "preview.csv"
}

// GetDefaultMD returns the default md2csv input (default preview.md).
func (c *Config) GetDefaultMD() string {
	if c.DefaultMD != "" {
		return c.DefaultMD
	}
	return "preview.md"
}

// GetUpdateDoc reports whether companion-document updates are enabled.
func (c *Config) GetUpdateDoc() bool {
	if c.UpdateDoc == nil {
		return true
	}
	return *c.UpdateDoc
}
