// Package config provides configuration loading and management for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for environment variable overrides (TODO_STORE_PATH, ...).
	EnvPrefix = "TODO"

	// LegacyPathEnv overrides the store path; it takes precedence over TODO_STORE_PATH
	// and the config file.
	LegacyPathEnv = "TODO_JSON_DB_PATH"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only reaches Unmarshal for keys viper already knows about.
	setDefaults(v, NewConfig())

	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("store.lock", d.Store.Lock)
	v.SetDefault("store.lock_timeout", d.Store.LockTimeout)
	v.SetDefault("display.date_format", d.Display.DateFormat)
	v.SetDefault("display.relative", d.Display.Relative)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.max_files", d.Log.MaxFiles)
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, DefaultConfigPath is used and a missing file is not an
// error; an explicitly named file must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if !os.IsNotExist(err) || explicit {
				return nil, &LoadError{
					Path:    path,
					Message: "config file not found",
					Err:     err,
				}
			}
		} else {
			l.v.SetConfigFile(path)
			if err := l.v.ReadInConfig(); err != nil {
				return nil, &LoadError{
					Path:    path,
					Message: "failed to read config file",
					Err:     err,
				}
			}
		}
	}

	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies overrides viper cannot map by key name.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(LegacyPathEnv); v != "" {
		cfg.Store.Path = v
	}
}

// viperDecodeHook composes the mapstructure hooks the config types need.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, DefaultConfigPath is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("cannot determine default config path")
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
