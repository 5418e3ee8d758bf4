package config

import "github.com/ryanthedev/cycle-cli/internal/catalog"

// Config is the root configuration structure. The whole file is optional:
// with no config present the built-in catalog and app rotation apply.
type Config struct {
	Settings Settings          `yaml:"settings" json:"settings"`
	Monitors []catalog.Monitor `yaml:"monitors,omitempty" json:"monitors,omitempty"`
	Apps     []string          `yaml:"apps,omitempty" json:"apps,omitempty"`
}

// Settings contains global application settings
type Settings struct {
	// EdgeSlack recalibrates the monitor-membership boundary (pixels)
	EdgeSlack float64 `yaml:"edgeSlack,omitempty" json:"edgeSlack,omitempty"`
}
