package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config file location.
const EnvConfigPath = "CMDX_CONFIG"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents cmdx configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color controls terminal colors: auto, always or never
	Color string `yaml:"color"`

	// MaxConcurrency bounds parallel path resolution (1 = sequential, 0 = unlimited)
	MaxConcurrency int `yaml:"max_concurrency"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "warn",
		Color:          ColorAuto,
		MaxConcurrency: 1,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from zero values, so max_concurrency: 0 is honored.
	type yamlConfig struct {
		LogLevel       string `yaml:"log_level"`
		Color          string `yaml:"color"`
		MaxConcurrency *int   `yaml:"max_concurrency"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}
	if yamlCfg.Color != "" {
		cfg.Color = strings.ToLower(yamlCfg.Color)
	}
	if yamlCfg.MaxConcurrency != nil {
		cfg.MaxConcurrency = *yamlCfg.MaxConcurrency
	}

	return cfg, nil
}

// DefaultConfigPath returns the config file location inside dir.
func DefaultConfigPath(dir string) string {
	return filepath.Join(dir, ".cmdx", "config.yaml")
}

// ResolveConfigPath picks the config file to load.
// Priority order:
//  1. explicit path (from --config)
//  2. CMDX_CONFIG environment variable
//  3. .cmdx/config.yaml in dir
func ResolveConfigPath(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultConfigPath(dir)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, color *string, maxConcurrency *int) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if color != nil {
		c.Color = strings.ToLower(*color)
	}
	if maxConcurrency != nil {
		c.MaxConcurrency = *maxConcurrency
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be >= 0, got %d", c.MaxConcurrency)
	}

	return nil
}
