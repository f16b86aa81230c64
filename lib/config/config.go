// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "SCRIPTEXPORT_CONFIG"

// Config is the service configuration.
type Config struct {
	// ListenAddress is the TCP address the export endpoint binds
	// (e.g., ":9080", "127.0.0.1:9080").
	ListenAddress string `yaml:"listen_address"`

	// ShutdownTimeout bounds graceful shutdown, as a Go duration
	// string ("15s"). Parsed by [Config.ShutdownDuration].
	ShutdownTimeout string `yaml:"shutdown_timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Chain supplies the chain references handed to builder
	// registration at startup.
	Chain ChainConfig `yaml:"chain"`
}

// ChainConfig identifies the target chain and the governance
// authority asset that parameterize domain builders.
type ChainConfig struct {
	// Network names the target chain ("mainnet", "preprod", ...).
	Network string `yaml:"network"`

	// AuthorityPolicy is the hex policy id of the governance
	// authority token.
	AuthorityPolicy string `yaml:"authority_policy"`

	// AuthorityName is the authority token name.
	AuthorityName string `yaml:"authority_name"`
}

// Default returns the configuration baseline that file values merge
// over. Chain values have no defaults: exporting scripts for an
// unintended chain is worse than refusing to start.
func Default() *Config {
	return &Config{
		ListenAddress:   ":9080",
		ShutdownTimeout: "15s",
		LogLevel:        "info",
	}
}

// Load loads configuration from the SCRIPTEXPORT_CONFIG environment
// variable. Fails when unset; there is no discovery.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your scriptexport.yaml config file, or use --config", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, applying
// defaults for absent ambient fields and validating the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ShutdownDuration returns the parsed shutdown timeout. Valid after
// a successful load.
func (c *Config) ShutdownDuration() time.Duration {
	parsed, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		// validate() already checked the string; reaching this means
		// the Config was mutated after load.
		panic("config: invalid shutdown_timeout: " + err.Error())
	}
	return parsed
}

func (c *Config) validate() error {
	if c.ListenAddress == "" {
		return fmt.Errorf("listen_address is required")
	}
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown_timeout: %w", err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.Chain.Network == "" {
		return fmt.Errorf("chain.network is required")
	}
	if c.Chain.AuthorityPolicy == "" {
		return fmt.Errorf("chain.authority_policy is required")
	}
	if c.Chain.AuthorityName == "" {
		return fmt.Errorf("chain.authority_name is required")
	}
	return nil
}
