// Package config loads the optional monitorctl configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"monitorctl/internal/errors"
)

const (
	// ConfigDir is the per-user config directory under ~/.config.
	ConfigDir = "monitorctl"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
)

// Config holds tool-level settings. The core client is configured
// entirely through these values; it owns no file format of its own.
type Config struct {
	// Binary is the backend utility name or path.
	Binary string `mapstructure:"binary"`

	// Timeout bounds each backend invocation, applied by the command
	// layer through the call context.
	Timeout time.Duration `mapstructure:"timeout"`

	// StatusFeatures optionally overrides the feature set queried by
	// the status command, as catalog names or hex codes.
	StatusFeatures []string `mapstructure:"status_features"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Binary:  "ddcutil",
		Timeout: 10 * time.Second,
	}
}

// Load reads configuration from the given path, or from
// ~/.config/monitorctl/config.yaml when path is empty. A missing
// implicit file is not an error; a missing explicit one is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("binary", "ddcutil")
	v.SetDefault("timeout", 10*time.Second)

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, ".config", ConfigDir, ConfigFileName)
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"failed to read config file "+path,
			"Check the file exists and is valid YAML")
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"invalid config file "+path,
			"Check the field names and types")
	}
	return cfg, nil
}
