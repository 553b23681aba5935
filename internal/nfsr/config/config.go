// Package config loads the nfsr-cycles CLI configuration from file,
// environment, and defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/keystream/nfsr-cycles/pkg/nfsr"
)

// Config represents the complete nfsr-cycles configuration
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RunConfig controls decomposition runs
type RunConfig struct {
	// MaxRegisterLength is the capacity guard: runs asking for longer
	// registers are rejected before any state is enumerated.
	MaxRegisterLength int `mapstructure:"max_register_length"`
}

// OutputConfig controls where results go
type OutputConfig struct {
	// File is the default report path used when --output is not given.
	// Empty means no persistence.
	File string `mapstructure:"file"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given file (optional), the NFSR_*
// environment, and built-in defaults, in ascending precedence of defaults <
// file < environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("run.max_register_length", nfsr.DefaultMaxRegisterLength)
	v.SetDefault("output.file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetEnvPrefix("NFSR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".nfsr-cycles")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		// A missing default config file is fine; anything else is not.
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration for contradictions.
func (c *Config) Validate() error {
	if c.Run.MaxRegisterLength < 1 {
		return fmt.Errorf("run.max_register_length must be positive, got %d", c.Run.MaxRegisterLength)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", c.Logging.Format)
	}
	return nil
}
