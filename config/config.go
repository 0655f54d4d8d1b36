// Package config provides configuration management for VPN Launcher.
// It handles loading, saving, and validating plugin settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/vpn-launcher/common"
)

// Config represents the application configuration.
// Settings are read from a YAML file in the user's config directory.
type Config struct {
	// Trigger is the query prefix that activates the plugin.
	Trigger string `yaml:"trigger"`
	// Tool is the command-line tool invoked to toggle a connection.
	Tool string `yaml:"tool"`
	// Icon is the icon theme name used for result items.
	Icon string `yaml:"icon"`
	// LogLevel sets the minimum log level: "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
	// LogFile enables logging to a rotated file in addition to stderr.
	LogFile bool `yaml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Trigger:  common.DefaultTrigger,
		Tool:     common.DefaultTool,
		Icon:     common.DefaultIconName,
		LogLevel: common.LogLevelInfo,
		LogFile:  false,
	}
}

// DefaultPath returns the default location of the configuration file.
func DefaultPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, common.ConfigFileName), nil
}

// LoadFrom loads the configuration from path.
// A missing file yields the defaults; nothing is written.
func LoadFrom(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: error parsing %s: %v", common.ErrConfigLoad, path, err)
	}

	config.validate()

	return config, nil
}

// validate replaces invalid values with their defaults.
func (c *Config) validate() {
	defaults := DefaultConfig()

	if c.Trigger == "" {
		c.Trigger = defaults.Trigger
	}
	if c.Tool == "" {
		c.Tool = defaults.Tool
	}
	if c.Icon == "" {
		c.Icon = defaults.Icon
	}
	if _, err := common.ParseLogLevel(c.LogLevel); err != nil {
		c.LogLevel = defaults.LogLevel
	}
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: error serializing configuration: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() common.LogLevel {
	level, _ := common.ParseLogLevel(c.LogLevel)
	return level
}
