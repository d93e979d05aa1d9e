package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// configName is the config file name without extension.
	configName = ".convertutils"

	// configType is the config file format.
	configType = "yaml"

	// envPrefix is the environment variable prefix for convertutils settings.
	envPrefix = "CONVERTUTILS"
)

const (
	// DefaultPrecision selects the shortest float representation.
	DefaultPrecision = -1

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

// Config holds the CLI settings.
type Config struct {
	Precision int    `mapstructure:"precision"`
	LogLevel  string `mapstructure:"log_level"`

	level slog.Level
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	return c.level
}

// Validate checks the config values and resolves the log level.
func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	c.level = level
	return nil
}

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	viperCfg.SetDefault("precision", DefaultPrecision)
	viperCfg.SetDefault("log_level", DefaultLogLevel)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}
