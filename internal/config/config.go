// Package config provides configuration data structures for todo.
package config

import (
	"fmt"
	"time"

	"github.com/wexinc/todo/internal/logging"
)

// Config represents the complete todo configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"   json:"store"   mapstructure:"store"`
	Display DisplayConfig `yaml:"display" json:"display" mapstructure:"display"`
	Log     LogConfig     `yaml:"log"     json:"log"     mapstructure:"log"`
}

// StoreConfig configures the backing JSON file.
type StoreConfig struct {
	// Path is the todo file. Empty means DefaultStorePath. A leading ~ is expanded.
	Path string `yaml:"path" json:"path" mapstructure:"path"`
	// Lock enables an advisory lock file next to the store (default: true).
	Lock bool `yaml:"lock" json:"lock" mapstructure:"lock"`
	// LockTimeout is how long to wait for another process to release the lock (default: 2s).
	LockTimeout time.Duration `yaml:"lock_timeout" json:"lock_timeout" mapstructure:"lock_timeout"`
}

// DisplayConfig configures list rendering.
type DisplayConfig struct {
	// DateFormat is a Go time layout for item timestamps (default: "2006-01-02 15:04").
	DateFormat string `yaml:"date_format" json:"date_format" mapstructure:"date_format"`
	// Relative renders timestamps as "3 hours ago" instead of DateFormat.
	Relative bool `yaml:"relative" json:"relative" mapstructure:"relative"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir enables file logging into this directory. Empty disables it.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON switches log output to JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
	// MaxFiles is how many log files to keep in Dir (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
}

// Default values.
const (
	DefaultStorePath   = "~/.todo.json"
	DefaultLockTimeout = 2 * time.Second
	DefaultDateFormat  = "2006-01-02 15:04"
	DefaultLogLevel    = "info"
	DefaultLogMaxFiles = 10
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:        "",
			Lock:        true,
			LockTimeout: DefaultLockTimeout,
		},
		Display: DisplayConfig{
			DateFormat: DefaultDateFormat,
			Relative:   false,
		},
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Dir:      "",
			JSON:     false,
			MaxFiles: DefaultLogMaxFiles,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// Booleans cannot be told apart from an explicit false, so the loader
// starts from NewConfig instead.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Store.LockTimeout == 0 {
		c.Store.LockTimeout = defaults.Store.LockTimeout
	}
	if c.Display.DateFormat == "" {
		c.Display.DateFormat = defaults.Display.DateFormat
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
}

// LoggingConfig converts the log section into a logging.Config.
// verbose forces debug-level console output on top of whatever is configured.
func (c *Config) LoggingConfig(verbose bool) (*logging.Config, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	lc := logging.DefaultConfig()
	lc.Level = level
	lc.LogDir = c.Log.Dir
	lc.JSONFormat = c.Log.JSON
	lc.MaxLogFiles = c.Log.MaxFiles
	if verbose {
		lc.Level = logging.LevelDebug
		lc.Console = true
	}
	return lc, nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Store.LockTimeout < 0 {
		errs = append(errs, &ValidationError{Field: "store.lock_timeout", Message: "must be non-negative"})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}

	// A layout without any reference component would print the same
	// literal text for every item.
	if c.Display.DateFormat != "" {
		sample := time.Date(2011, time.November, 13, 22, 48, 39, 0, time.UTC)
		if sample.Format(c.Display.DateFormat) == c.Display.DateFormat {
			errs = append(errs, &ValidationError{
				Field:   "display.date_format",
				Message: fmt.Sprintf("%q is not a Go time layout (e.g. %q)", c.Display.DateFormat, DefaultDateFormat),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
