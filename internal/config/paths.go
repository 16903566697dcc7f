package config

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// DefaultConfigPath returns ~/.config/todo/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "todo", "config.yaml")
}

// StorePath resolves the todo file location. override (the --file flag) wins
// over the configured path, which wins over DefaultStorePath. A leading ~ is
// expanded to the user's home directory.
func (c *Config) StorePath(override string) (string, error) {
	path := override
	if path == "" {
		path = c.Store.Path
	}
	if path == "" {
		path = DefaultStorePath
	}
	return homedir.Expand(path)
}
