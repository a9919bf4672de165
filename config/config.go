package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const appName = "minipng"

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Path of the generated PNG file
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
	// Whether to print a hexdump of the generated bytes
	Hexdump *bool `yaml:"hexdump,omitempty" json:"hexdump,omitempty"`
	// Whether to open the generated file after writing it
	Open *bool `yaml:"open,omitempty" json:"open,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/minipng/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/minipng/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config: %w", err)
				}
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// HexdumpEnabled reports whether the hexdump should be printed. It defaults to true.
func (c *Config) HexdumpEnabled() bool {
	if c == nil || c.Hexdump == nil {
		return true
	}
	return *c.Hexdump
}

func (c *Config) OpenEnabled() bool {
	if c == nil || c.Open == nil {
		return false
	}
	return *c.Open
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, appName)
	} else {
		configHomePath = filepath.Join(homePath, ".config", appName)
	}
	return configHomePath
}

func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, appName)
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", appName)
	}
	return stateHomePath
}
