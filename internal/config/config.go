package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the application configuration.
type Config struct {
	Icons  string `koanf:"icons"`   // "nerd", "unicode", or "none"
	DBPath string `koanf:"db_path"` // empty means the XDG data dir

	Confirm ConfirmConfig `koanf:"confirm"`
	Log     LogConfig     `koanf:"log"`
}

// ConfirmConfig holds settings for the destructive action dialogs.
type ConfirmConfig struct {
	CloseOnBackdrop *bool `koanf:"close_on_backdrop"` // default: true
	TimeoutSecs     int   `koanf:"timeout_secs"`      // handler timeout, 0 = none (default: 30)
}

// LogConfig holds log file settings. Logging is off when Dir is empty.
type LogConfig struct {
	Level      string `koanf:"level"`        // debug, info, warn, error (default: info)
	Dir        string `koanf:"dir"`          // directory for tidy.log
	MaxSizeMB  int    `koanf:"max_size_mb"`  // default: 10
	MaxBackups int    `koanf:"max_backups"`  // default: 3
	MaxAgeDays int    `koanf:"max_age_days"` // default: 14
	Compress   *bool  `koanf:"compress"`     // default: true
}

const defaultTimeoutSecs = 30

// Load reads the user config file, then ./config.toml in the working directory.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Icons:   "unicode",
		Confirm: ConfirmConfig{TimeoutSecs: -1},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))
	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/tidy/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tidy", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetConfirmConfig returns the dialog configuration with defaults applied.
func (c *Config) GetConfirmConfig() ConfirmConfig {
	cfg := c.Confirm

	if cfg.CloseOnBackdrop == nil {
		cfg.CloseOnBackdrop = boolPtr(true)
	}
	if cfg.TimeoutSecs < 0 {
		cfg.TimeoutSecs = defaultTimeoutSecs
	}

	return cfg
}

// Timeout returns the handler timeout, or 0 for none.
func (c ConfirmConfig) Timeout() time.Duration {
	return time.Duration(max(c.TimeoutSecs, 0)) * time.Second
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 14
	}
	if cfg.Compress == nil {
		cfg.Compress = boolPtr(true)
	}

	return cfg
}

func boolPtr(b bool) *bool {
	return &b
}
