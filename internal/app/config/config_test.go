package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planvet/planvet/internal/app/config"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvHome, "")
	t.Setenv(config.EnvStderrLevel, "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".planvet", "sessions"), cfg.Home())
	assert.Equal(t, "info", cfg.StderrLevel())
	assert.Equal(t, "default", cfg.ConfigSource())
	assert.Empty(t, cfg.SettingPath())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvHome, "/tmp/planvet-test-root")
	t.Setenv(config.EnvStderrLevel, "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/planvet-test-root", cfg.Home())
	assert.Equal(t, "debug", cfg.StderrLevel())
	assert.Equal(t, "env", cfg.ConfigSource())
}

func TestLoad_SettingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvHome, "")
	t.Setenv(config.EnvStderrLevel, "")

	base := filepath.Join(home, ".planvet")
	require.NoError(t, os.MkdirAll(base, 0o755))
	setting := "home: /srv/review/sessions\nstderr_level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(base, "setting.yaml"), []byte(setting), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/review/sessions", cfg.Home())
	assert.Equal(t, "warn", cfg.StderrLevel())
	assert.Equal(t, "file", cfg.ConfigSource())
	assert.Equal(t, filepath.Join(base, "setting.yaml"), cfg.SettingPath())
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvHome, "/elsewhere")
	t.Setenv(config.EnvStderrLevel, "")

	base := filepath.Join(home, ".planvet")
	require.NoError(t, os.MkdirAll(base, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "setting.yaml"), []byte("home: /srv/x\n"), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/elsewhere", cfg.Home())
	assert.Equal(t, "env", cfg.ConfigSource())
}

func TestLoad_BadSettingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvHome, "")

	base := filepath.Join(home, ".planvet")
	require.NoError(t, os.MkdirAll(base, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "setting.yaml"), []byte("home: [unclosed\n"), 0o644))

	_, err := config.Load()
	assert.Error(t, err)
}
