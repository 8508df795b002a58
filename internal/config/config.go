// Package config persists the single tool setting: the session directory.
// Loaded once per command invocation, never cached across invocations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotConfigured means the session directory was never set.
var ErrNotConfigured = fmt.Errorf("session directory not configured")

type fileFormat struct {
	SessionDir string `yaml:"session_dir"`
}

// Config gives commands access to the persisted settings. The Path field
// exists so tests can point at a scratch file.
type Config struct {
	Path string
}

// Default locates the config file under the per-user configuration area.
func Default() (*Config, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Config{Path: filepath.Join(base, "chatreplay", "config.yaml")}, nil
}

// SessionDir returns the configured session directory, or ErrNotConfigured
// when it was never set.
func (c *Config) SessionDir() (string, error) {
	data, err := os.ReadFile(c.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotConfigured
	}
	if err != nil {
		return "", err
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("parsing %s: %w", c.Path, err)
	}
	if f.SessionDir == "" {
		return "", ErrNotConfigured
	}
	return f.SessionDir, nil
}

// SetSessionDir stores the session directory. Full-file overwrite, so
// repeated calls with the same value are idempotent.
func (c *Config) SetSessionDir(dir string) error {
	data, err := yaml.Marshal(fileFormat{SessionDir: dir})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.Path, data, 0o644)
}
