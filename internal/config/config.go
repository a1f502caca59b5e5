// Package config provides configuration management for zcalc.
//
// The config file holds tool preferences only — output directory,
// table format, materials library location, fabrication fallbacks.
// Stackup and net list documents are per-project inputs and never live
// in the config.
//
// Config file locations (priority order):
//  1. $ZCALC_CONFIG
//  2. ./zcalc.yaml
//  3. ~/.config/zcalc/config.yaml
package config

import (
	"fmt"
	"os"

	"zcalc/internal/domain"
	"zcalc/internal/report"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Version     int               `yaml:"version"`
	Output      OutputConfig      `yaml:"output"`
	Library     LibraryConfig     `yaml:"library"`
	Fabrication FabricationConfig `yaml:"fabrication,omitempty"`
}

// OutputConfig controls where and how results are written
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	TableFormat string `yaml:"table_format"`
}

// LibraryConfig locates the materials catalog
type LibraryConfig struct {
	Path string `yaml:"path"`
}

// FabricationConfig overrides the built-in fabrication defaults used
// when a stackup document has no fabrication section. Zero values mean
// "use the built-in default".
type FabricationConfig struct {
	MinTraceMm     float64 `yaml:"min_trace_mm,omitempty"`
	MinClearanceMm float64 `yaml:"min_clearance_mm,omitempty"`
	MaxCopperOz    float64 `yaml:"max_copper_oz,omitempty"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, path, err
	}
	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a fresh installation
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Output:  OutputConfig{Dir: "out", TableFormat: "markdown"},
		Library: LibraryConfig{Path: "./zcalc-materials.db"},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}
	if c.Output.TableFormat == "" {
		c.Output.TableFormat = "markdown"
	}
	if c.Library.Path == "" {
		c.Library.Path = "./zcalc-materials.db"
	}
}

func (c *Config) validate() error {
	if c.Output.TableFormat != "" {
		if _, err := report.ForFormat(c.Output.TableFormat); err != nil {
			return fmt.Errorf("config output.table_format: %w", err)
		}
	}
	for _, f := range []struct {
		key string
		val float64
	}{
		{"min_trace_mm", c.Fabrication.MinTraceMm},
		{"min_clearance_mm", c.Fabrication.MinClearanceMm},
		{"max_copper_oz", c.Fabrication.MaxCopperOz},
	} {
		if f.val < 0 {
			return fmt.Errorf("config fabrication.%s must not be negative", f.key)
		}
	}
	return nil
}

// EffectiveFabrication merges the config's fabrication overrides over
// the built-in defaults.
func (c *Config) EffectiveFabrication() domain.Fabrication {
	fab := domain.DefaultFabrication()
	if c.Fabrication.MinTraceMm > 0 {
		fab.MinTraceMm = c.Fabrication.MinTraceMm
	}
	if c.Fabrication.MinClearanceMm > 0 {
		fab.MinClearanceMm = c.Fabrication.MinClearanceMm
	}
	if c.Fabrication.MaxCopperOz > 0 {
		fab.MaxCopperOz = c.Fabrication.MaxCopperOz
	}
	return fab
}
