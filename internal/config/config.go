// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Tasagare settings from file, environment and flags
// with viper, and writes default configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName   = "tasagare"
	envPrefix = "TASAGARE"

	// KeyRearrangeSeed is the constant seed used for fingerprinting.
	KeyRearrangeSeed = "rearrange.seed"
	// KeyRearrangeGranularity is the default granularity of the rearrange
	// and seed commands.
	KeyRearrangeGranularity = "rearrange.granularity"
	KeyLanguage             = "language"
	KeyLogLevel             = "log.level"

	// LegacySeedEnv is the environment variable earlier deployments used for
	// the rearrangement seed.
	LegacySeedEnv = "RE_SEED"
)

// Config is the effective configuration.
type Config struct {
	Rearrange RearrangeConfig `mapstructure:"rearrange" yaml:"rearrange"`
	Language  string          `mapstructure:"language" yaml:"language"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

// RearrangeConfig holds the rearrangement settings.
type RearrangeConfig struct {
	// Seed is the process-wide fingerprinting seed. Empty selects the
	// built-in default.
	Seed        string `mapstructure:"seed" yaml:"seed"`
	Granularity string `mapstructure:"granularity" yaml:"granularity"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the default value of every key.
func Defaults() map[string]any {
	return map[string]any{
		KeyRearrangeSeed:        "",
		KeyRearrangeGranularity: "none",
		KeyLanguage:             "en",
		KeyLogLevel:             "info",
	}
}

// Default returns the configuration written by `tasagare config init`.
func Default() Config {
	d := Defaults()
	return Config{
		Rearrange: RearrangeConfig{Granularity: d[KeyRearrangeGranularity].(string)},
		Language:  d[KeyLanguage].(string),
		Log:       LogConfig{Level: d[KeyLogLevel].(string)},
	}
}

// Redacted returns a copy safe for printing.
func (c Config) Redacted() Config {
	if c.Rearrange.Seed != "" {
		c.Rearrange.Seed = "[SECRET]"
	}
	return c
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Tasagare")
		default:
			configDir = "/etc/tasagare"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig reads configuration in increasing precedence from defaults, the
// first tasagare.yaml found (or explicitPath), environment variables and the
// flags of cmd. A missing config file is not an error. The viper instance is
// returned for introspection.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, *viper.Viper, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	if explicitPath != nil && *explicitPath != "" {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, v, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The prefixed name wins over the legacy one when both are set.
	if err := v.BindEnv(KeyRearrangeSeed, envPrefix+"_REARRANGE_SEED", LegacySeedEnv); err != nil {
		return c, v, err
	}

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, v, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, v, fmt.Errorf("decoding config: %w", err)
	}
	return c, v, nil
}

// WriteConfigFile writes c as YAML to path, or to the user config path when
// path is empty, creating parent directories. The file is private to the
// owner because it may hold the rearrangement seed.
func WriteConfigFile[T any](c *T, path string) (string, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath(false)
		if err != nil {
			return "", err
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
