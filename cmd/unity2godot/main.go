// Package main provides the CLI entrypoint for unity2godot.
//
// unity2godot converts a Unity project tree into a Godot project tree:
//   - Indexes source assets by extension (materials, meshes, animations, scripts)
//   - Converts each asset kind and records source-to-target path mappings
//   - Recursively converts scenes and prefabs into node documents
//   - Rewrites leftover asset references across the emitted tree
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"unity2godot/internal/config"
	"unity2godot/internal/inventory"
	"unity2godot/internal/pipeline"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "unity2godot",
		Short: "Convert a Unity project into a Godot project",
		Long: `unity2godot converts the scene hierarchy, prefabs, materials,
animations and scripts of a Unity project into their Godot
counterparts. Script bodies are relocated, not translated; meshes
without an importer fall back to a placeholder cube.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "unity2godot.toml", "path to TOML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Run a full conversion from --source into --target",
		RunE:  runConvert,
	}
	convertCmd.Flags().String("source", "", "Unity project root")
	convertCmd.Flags().String("target", "", "Godot project root to create")
	convertCmd.Flags().Int("workers", 0, "concurrent asset converters (default from config)")
	convertCmd.Flags().String("texture-format", "", "texture output policy: keep|png")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Print the asset inventory without converting",
		RunE:  runScan,
	}
	scanCmd.Flags().String("source", "", "Unity project root")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "unity2godot "+version)
		},
	}

	rootCmd.AddCommand(convertCmd, scanCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the TOML file, environment and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	cfg = config.FromEnv(cfg)

	if v, _ := cmd.Flags().GetString("source"); v != "" {
		cfg.SourceRoot = v
	}

	if v, _ := cmd.Flags().GetString("target"); v != "" {
		cfg.TargetRoot = v
	}

	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.Workers = v
	}

	if v, _ := cmd.Flags().GetString("texture-format"); v != "" {
		cfg.TextureFormat = v
	}

	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo

	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runConvert(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runner := &pipeline.Runner{Config: cfg, Log: newLogger(cfg)}

	summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	for _, w := range summary.Diags.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+w.String())
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runner := &pipeline.Runner{Config: cfg, Log: newLogger(cfg)}

	inv, err := runner.ScanOnly()
	if err != nil {
		return err
	}

	report := map[string]map[string]string{}
	for kind := inventory.Material; kind <= inventory.Scene; kind++ {
		report[kind.String()] = inv.Table(kind)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
