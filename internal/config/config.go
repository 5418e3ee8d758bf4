package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ryanthedev/cycle-cli/internal/apps"
	"github.com/ryanthedev/cycle-cli/internal/catalog"
)

const (
	DefaultConfigDir  = ".config/cyclecli"
	DefaultConfigFile = "config.yaml"
)

// Default returns the zero-setup configuration
func Default() *Config {
	return &Config{}
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, uses ~/.config/cyclecli/config.yaml (or .json); a
// missing default file yields the built-in defaults rather than an error,
// since the tool must work with zero setup. An explicit path that does not
// exist is still an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// Validate checks monitor and ratio constraints
func (c *Config) Validate() error {
	switch len(c.Monitors) {
	case 0, 2:
	default:
		return fmt.Errorf("monitors must list exactly two entries (primary, secondary), got %d", len(c.Monitors))
	}

	for i, m := range c.Monitors {
		if m.Width <= 0 || m.Height <= 0 {
			return fmt.Errorf("monitor %d (%s): width and height must be positive", i, m.Name)
		}
		if len(m.Horizontal) == 0 {
			return fmt.Errorf("monitor %d (%s): horizontal ratio sequence is empty", i, m.Name)
		}
		if len(m.Vertical) == 0 {
			return fmt.Errorf("monitor %d (%s): vertical ratio sequence is empty", i, m.Name)
		}
		for _, seq := range [][]float64{m.Horizontal, m.Vertical} {
			for _, r := range seq {
				if r <= 0 || r > 1 {
					return fmt.Errorf("monitor %d (%s): ratio %v out of range (0, 1]", i, m.Name, r)
				}
			}
		}
	}

	if c.Settings.EdgeSlack < 0 {
		return fmt.Errorf("edgeSlack must not be negative")
	}

	return nil
}

// Catalog builds the effective geometry catalog: config monitors when
// given, the built-in table otherwise, with the slack zone overridable
// either way
func (c *Config) Catalog() *catalog.Catalog {
	cat := catalog.Default()
	if len(c.Monitors) == 2 {
		cat.Primary = c.Monitors[0]
		cat.Secondary = c.Monitors[1]
	}
	if c.Settings.EdgeSlack > 0 {
		cat.EdgeSlack = c.Settings.EdgeSlack
	}
	return cat
}

// CycleApps returns the effective app rotation
func (c *Config) CycleApps() []string {
	if len(c.Apps) > 0 {
		return c.Apps
	}
	return apps.DefaultCycleList
}
