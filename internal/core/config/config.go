// Package config handles configuration loading and validation for todolist.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/todolist/internal/core/styles"
	"github.com/hay-kot/todolist/internal/core/todo"
)

// ListStyle selects how the list command renders items.
type ListStyle string

const (
	// ListStyleNumbered prefixes every line with its zero-based position.
	ListStyleNumbered ListStyle = "numbered"
	// ListStyleRaw prints the list file verbatim.
	ListStyleRaw ListStyle = "raw"
)

// IsValid checks if the list style is supported.
func (s ListStyle) IsValid() bool {
	switch s {
	case ListStyleNumbered, ListStyleRaw:
		return true
	default:
		return false
	}
}

// Config holds the application configuration.
type Config struct {
	// Dir overrides the directory holding the list file. Empty means the
	// user's home directory.
	Dir      string     `yaml:"dir"       json:"dir,omitempty"`
	FileName string     `yaml:"file_name" json:"file_name"`
	List     ListConfig `yaml:"list"      json:"list"`
	// Theme names the palette used when list output goes to a terminal.
	Theme string `yaml:"theme" json:"theme"`
}

// ListConfig holds list rendering options.
type ListConfig struct {
	Style ListStyle `yaml:"style" json:"style"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		FileName: todo.DefaultFileName,
		List: ListConfig{
			Style: ListStyleNumbered,
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.FileName == "" {
		c.FileName = defaults.FileName
	}
	if c.List.Style == "" {
		c.List.Style = defaults.List.Style
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// StoragePath locates the list file. An explicit override wins, then the
// configured directory, then the home directory returned by lookup.
func (c *Config) StoragePath(override string, lookup func() (string, error)) todo.Resolution {
	switch {
	case override != "":
		return todo.Resolution{Path: override}
	case c.Dir != "":
		return todo.Resolution{Path: filepath.Join(c.Dir, c.FileName)}
	default:
		return todo.ResolveStoragePath(lookup, c.FileName)
	}
}
