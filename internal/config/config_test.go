package config

import (
	"strings"
	"testing"
	"time"

	"github.com/wexinc/todo/internal/logging"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Store.Path != "" {
		t.Errorf("expected empty store.path, got %q", cfg.Store.Path)
	}
	if !cfg.Store.Lock {
		t.Error("expected store.lock to default to true")
	}
	if cfg.Store.LockTimeout != DefaultLockTimeout {
		t.Errorf("expected store.lock_timeout %v, got %v", DefaultLockTimeout, cfg.Store.LockTimeout)
	}
	if cfg.Display.DateFormat != DefaultDateFormat {
		t.Errorf("expected display.date_format %q, got %q", DefaultDateFormat, cfg.Display.DateFormat)
	}
	if cfg.Display.Relative {
		t.Error("expected display.relative to default to false")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log.level 'info', got %q", cfg.Log.Level)
	}
	if cfg.Log.MaxFiles != DefaultLogMaxFiles {
		t.Errorf("expected log.max_files %d, got %d", DefaultLogMaxFiles, cfg.Log.MaxFiles)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Store.LockTimeout != DefaultLockTimeout {
		t.Errorf("expected lock_timeout %v, got %v", DefaultLockTimeout, cfg.Store.LockTimeout)
	}
	if cfg.Display.DateFormat != DefaultDateFormat {
		t.Errorf("expected date_format %q, got %q", DefaultDateFormat, cfg.Display.DateFormat)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("expected log.level %q, got %q", DefaultLogLevel, cfg.Log.Level)
	}
	if cfg.Log.MaxFiles != DefaultLogMaxFiles {
		t.Errorf("expected max_files %d, got %d", DefaultLogMaxFiles, cfg.Log.MaxFiles)
	}
}

func TestConfig_ApplyDefaults_PreservesExistingValues(t *testing.T) {
	cfg := &Config{
		Store:   StoreConfig{Path: "/data/todo.json", LockTimeout: 5 * time.Second},
		Display: DisplayConfig{DateFormat: "02.01.06"},
		Log:     LogConfig{Level: "debug", MaxFiles: 3},
	}
	cfg.ApplyDefaults()

	if cfg.Store.Path != "/data/todo.json" {
		t.Errorf("store.path overwritten: %q", cfg.Store.Path)
	}
	if cfg.Store.LockTimeout != 5*time.Second {
		t.Errorf("lock_timeout overwritten: %v", cfg.Store.LockTimeout)
	}
	if cfg.Display.DateFormat != "02.01.06" {
		t.Errorf("date_format overwritten: %q", cfg.Display.DateFormat)
	}
	if cfg.Log.Level != "debug" || cfg.Log.MaxFiles != 3 {
		t.Errorf("log settings overwritten: %+v", cfg.Log)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"negative lock timeout", func(c *Config) { c.Store.LockTimeout = -time.Second }, "store.lock_timeout"},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
		{"negative max files", func(c *Config) { c.Log.MaxFiles = -1 }, "log.max_files"},
		{"literal date format", func(c *Config) { c.Display.DateFormat = "yyyy-mm-dd" }, "display.date_format"},
		{"custom date format", func(c *Config) { c.Display.DateFormat = "Jan 2 15:04" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.LockTimeout = -1
	cfg.Log.Level = "nope"

	err := cfg.Validate()
	errs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d", len(errs))
	}
	if !strings.HasPrefix(err.Error(), "multiple validation errors:") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestConfig_LoggingConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "warn"
	cfg.Log.Dir = "/var/log/todo"
	cfg.Log.JSON = true

	lc, err := cfg.LoggingConfig(false)
	if err != nil {
		t.Fatalf("LoggingConfig() error = %v", err)
	}
	if lc.Level != logging.LevelWarn {
		t.Errorf("level = %v, want WARN", lc.Level)
	}
	if lc.LogDir != "/var/log/todo" || !lc.JSONFormat || lc.Console {
		t.Errorf("unexpected logging config: %+v", lc)
	}

	verbose, err := cfg.LoggingConfig(true)
	if err != nil {
		t.Fatalf("LoggingConfig(true) error = %v", err)
	}
	if verbose.Level != logging.LevelDebug || !verbose.Console {
		t.Errorf("verbose should force debug console logging: %+v", verbose)
	}
}
