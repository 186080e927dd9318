// Package config provides configuration management for Archium.
//
// This package handles loading configuration from multiple sources:
//   - YAML configuration files
//   - Environment variables (with ARCHIUM_ prefix)
//   - Default values
//
// # Configuration Sources Priority
//
// Configuration is loaded in the following order (later sources
// override earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./archium.yaml, ~/.archium/config.yaml,
//     /etc/archium/config.yaml)
//  3. Environment variables (ARCHIUM_ prefix)
//
// # Environment Variables
//
// Environment variables override all other configuration sources.
// Use the ARCHIUM_ prefix and underscores for nested keys:
//   - ARCHIUM_OUTPUT_FORMAT=yaml
//   - ARCHIUM_LOGGING_LEVEL=debug
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration structure for Archium.
type Config struct {
	// Workspace contains workspace file settings
	Workspace WorkspaceConfig `mapstructure:"workspace"`

	// Output contains export/output settings
	Output OutputConfig `mapstructure:"output"`

	// Logging contains logging settings
	Logging LoggingConfig `mapstructure:"logging"`
}

// WorkspaceConfig contains workspace file settings.
type WorkspaceConfig struct {
	// Path is the default workspace file used when a command is not
	// given one explicitly
	Path string `mapstructure:"path"`
}

// OutputConfig contains export/output settings.
type OutputConfig struct {
	// Format is the default export format (json, yaml, jsonld)
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log format (json, text)
	Format string `mapstructure:"format"`
}

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for archium.yaml in standard
// locations.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("archium")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.archium")
		v.AddConfigPath("/etc/archium")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("ARCHIUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workspace.path", "workspace.json")

	v.SetDefault("output.format", "json")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "json", "yaml", "jsonld":
	default:
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	return nil
}

func isFileNotFoundError(err error) bool {
	return os.IsNotExist(err) || strings.Contains(err.Error(), "no such file")
}
