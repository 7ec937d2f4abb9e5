// Package config provides configuration loading with defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the optional per-directory config file name.
const DefaultConfigFile = ".fidgraph.yaml"

// Config holds static parse configuration (read-only after load).
type Config struct {
	Columns ColumnsConfig `yaml:"columns,omitempty"`
}

// ColumnsConfig names the two designated columns the pipeline reads.
type ColumnsConfig struct {
	// Organisation is the column holding the company name.
	Organisation string `yaml:"organisation,omitempty"`
	// Contact is the free-text column hypothesized to hold a person's
	// name, role and phone number.
	Contact string `yaml:"contact,omitempty"`
}

// Default returns a Config matching the published directory layout.
func Default() *Config {
	return &Config{
		Columns: ColumnsConfig{
			Organisation: "Organisation Name",
			Contact:      "Phone Number",
		},
	}
}

// Load reads the config file from the given directory, falling back to
// defaults when the file does not exist. Fields left empty in the file keep
// their default values.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(basePath, DefaultConfigFile))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Columns.Organisation == "" {
		cfg.Columns.Organisation = Default().Columns.Organisation
	}
	if cfg.Columns.Contact == "" {
		cfg.Columns.Contact = Default().Columns.Contact
	}

	return cfg, nil
}
