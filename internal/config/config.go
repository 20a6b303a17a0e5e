package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"unity2godot/internal/imaging"
)

// Environment variable names recognized by FromEnv.
const (
	EnvSourceRoot = "U2G_SOURCE"
	EnvTargetRoot = "U2G_TARGET"
	EnvWorkers    = "U2G_WORKERS"
	EnvLogLevel   = "U2G_LOG_LEVEL"
)

// Config are the options of one conversion run.
type Config struct {
	// SourceRoot and TargetRoot come from flags or environment, never
	// from the TOML file: a config file should be shareable between
	// projects.
	SourceRoot string `toml:"-"`
	TargetRoot string `toml:"-"`

	// Workers bounds the concurrent asset-converter stage.
	Workers int `toml:"workers"`

	// TextureFormat is the image codec output policy: "keep" or "png".
	TextureFormat string `toml:"texture_format"`

	// TypeMap adds extra source-type to target-type entries on top of
	// the built-in table.
	TypeMap map[string]string `toml:"type_map"`

	// Skip lists asset categories to leave unconverted, by category
	// name ("materials", "meshes", "animations", "scripts").
	Skip []string `toml:"skip"`

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `toml:"log_level"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Workers:       4,
		TextureFormat: imaging.FormatKeep,
		LogLevel:      "info",
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// FromEnv overlays environment variables, loading an optional .env
// file first.
func FromEnv(cfg Config) Config {
	_ = godotenv.Load()

	if v := os.Getenv(EnvSourceRoot); v != "" {
		cfg.SourceRoot = v
	}

	if v := os.Getenv(EnvTargetRoot); v != "" {
		cfg.TargetRoot = v
	}

	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// SkipCategory reports whether a target category is disabled.
func (c Config) SkipCategory(category string) bool {
	return slices.Contains(c.Skip, category)
}

// Validate checks the cross-field constraints before a run.
func (c Config) Validate() error {
	if c.SourceRoot == "" {
		return errors.New("source root is required")
	}

	if c.TargetRoot == "" {
		return errors.New("target root is required")
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	if c.TextureFormat != imaging.FormatKeep && c.TextureFormat != imaging.FormatPNG {
		return fmt.Errorf("unknown texture format %q", c.TextureFormat)
	}

	return nil
}
