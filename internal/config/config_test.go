package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unity2godot.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers = 8
texture_format = "png"
skip = ["scripts"]

[type_map]
Terrain = "StaticBody3D"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "png", cfg.TextureFormat)
	assert.True(t, cfg.SkipCategory("scripts"))
	assert.False(t, cfg.SkipCategory("materials"))
	assert.Equal(t, "StaticBody3D", cfg.TypeMap["Terrain"])
	// Untouched keys keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = [not toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvSourceRoot, "/proj/unity")
	t.Setenv(EnvTargetRoot, "/proj/godot")
	t.Setenv(EnvWorkers, "2")
	t.Setenv(EnvLogLevel, "debug")

	cfg := FromEnv(Default())

	assert.Equal(t, "/proj/unity", cfg.SourceRoot)
	assert.Equal(t, "/proj/godot", cfg.TargetRoot)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Validate()) // missing roots

	cfg.SourceRoot = "/a"
	cfg.TargetRoot = "/b"
	assert.NoError(t, cfg.Validate())

	cfg.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SourceRoot = "/a"
	cfg.TargetRoot = "/b"
	cfg.TextureFormat = "bmp2000"
	assert.Error(t, cfg.Validate())
}
