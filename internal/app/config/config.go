// Package config resolves application configuration: the session storage
// root and logging level. Resolution order is environment variable, then
// setting.yaml in the planvet home, then built-in defaults. The storage
// root is always passed onward as an explicit parameter so tests can run
// against isolated roots.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load.
const (
	EnvHome        = "PLANVET_HOME"
	EnvStderrLevel = "PLANVET_STDERR_LEVEL"
)

// Config provides read-only access to application configuration.
type Config interface {
	Home() string         // Session storage root directory
	StderrLevel() string  // Stderr log level (debug|info|warn|error)
	ConfigSource() string // "env", "file", or "default"
	SettingPath() string  // Path to setting.yaml if one was loaded
}

// AppConfig is the concrete implementation of Config.
type AppConfig struct {
	home         string
	stderrLevel  string
	configSource string
	settingPath  string
}

func (c *AppConfig) Home() string         { return c.home }
func (c *AppConfig) StderrLevel() string  { return c.stderrLevel }
func (c *AppConfig) ConfigSource() string { return c.configSource }
func (c *AppConfig) SettingPath() string  { return c.settingPath }

// NewAppConfig constructs a config with explicit values. Used by tests and
// by callers that already know the storage root.
func NewAppConfig(home, stderrLevel, configSource, settingPath string) *AppConfig {
	return &AppConfig{
		home:         home,
		stderrLevel:  stderrLevel,
		configSource: configSource,
		settingPath:  settingPath,
	}
}

// setting mirrors the optional setting.yaml file.
type setting struct {
	Home        string `yaml:"home"`
	StderrLevel string `yaml:"stderr_level"`
}

// Load resolves configuration. The planvet home defaults to ~/.planvet;
// the session root to <home>/sessions. PLANVET_HOME overrides the session
// root directly, for test isolation and non-standard layouts.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		stderrLevel:  "info",
		configSource: "default",
	}

	base, err := baseDir()
	if err != nil {
		return nil, err
	}
	cfg.home = filepath.Join(base, "sessions")

	settingPath := filepath.Join(base, "setting.yaml")
	if data, err := os.ReadFile(settingPath); err == nil {
		var s setting
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", settingPath, err)
		}
		cfg.settingPath = settingPath
		cfg.configSource = "file"
		if s.Home != "" {
			cfg.home = s.Home
		}
		if s.StderrLevel != "" {
			cfg.stderrLevel = s.StderrLevel
		}
	}

	if home := os.Getenv(EnvHome); home != "" {
		cfg.home = home
		cfg.configSource = "env"
	}
	if level := os.Getenv(EnvStderrLevel); level != "" {
		cfg.stderrLevel = level
	}

	return cfg, nil
}

func baseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".planvet"), nil
}
