package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"unity2godot/internal/assets"
	"unity2godot/internal/config"
	"unity2godot/internal/diagnostic"
	"unity2godot/internal/geometry"
	"unity2godot/internal/graph"
	"unity2godot/internal/imaging"
	"unity2godot/internal/inventory"
	"unity2godot/internal/refmap"
	"unity2godot/internal/rewrite"
	"unity2godot/internal/unity"
)

// Runner executes one conversion run.
type Runner struct {
	Config config.Config
	// Importer extracts real mesh geometry; nil means the shipped
	// importer, which always falls back to the unit cube.
	Importer geometry.Importer
	Log      *slog.Logger
}

// Summary reports what one run produced.
type Summary struct {
	Materials  int `json:"materials"`
	Meshes     int `json:"meshes"`
	Animations int `json:"animations"`
	Scripts    int `json:"scripts"`
	Scenes     int `json:"scenes"`
	Prefabs    int `json:"prefabs"`
	Rewritten  int `json:"rewritten"`

	DurationMS int64 `json:"duration_ms"`

	Diags diagnostic.Diagnostics `json:"-"`
}

// Run performs a full conversion: the four stages execute strictly in
// order because node conversion needs a populated reference table and
// the rewriter needs every document written.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	log := r.logger()
	cfg := r.Config

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	codec, err := imaging.NewCodec(cfg.TextureFormat)
	if err != nil {
		return nil, err
	}

	importer := r.Importer
	if importer == nil {
		importer = geometry.NoImporter{}
	}

	summary := &Summary{}

	// Stage 1: inventory.
	inv, err := inventory.Scan(cfg.SourceRoot)
	if err != nil {
		return nil, err
	}
	log.Info("indexed source project", "root", cfg.SourceRoot, "files", inv.Total())

	refs := refmap.New()

	// Stage 2: asset converters, concurrently.
	stage := &assets.Stage{
		Conv: &assets.Converter{
			SourceRoot: cfg.SourceRoot,
			TargetRoot: cfg.TargetRoot,
			Refs:       refs,
			Codec:      codec,
			Importer:   importer,
			Log:        log,
		},
		Workers: cfg.Workers,
		Skip:    func(k inventory.AssetKind) bool { return cfg.SkipCategory(k.Category()) },
	}

	counts, diags, err := stage.Run(ctx, inv)
	if err != nil {
		return nil, err
	}

	summary.Materials = counts[inventory.Material]
	summary.Meshes = counts[inventory.Mesh]
	summary.Animations = counts[inventory.Animation]
	summary.Scripts = counts[inventory.Script]
	summary.Diags.Merge(diags)
	log.Info("converted assets",
		"materials", summary.Materials, "meshes", summary.Meshes,
		"animations", summary.Animations, "scripts", summary.Scripts)

	// Stage 3: scenes and prefabs.
	conv := &graph.Converter{
		Refs:       refs,
		TargetRoot: cfg.TargetRoot,
		ExtraTypes: cfg.TypeMap,
		Diags:      &summary.Diags,
		Log:        log,
	}

	for name, path := range inv.Table(inventory.Scene) {
		doc, err := unity.LoadScene(path)
		if err != nil {
			return nil, err
		}

		out := filepath.Join(cfg.TargetRoot, inventory.Scene.Category(), name+".tscn")
		if err := conv.ConvertScene(filepath.Base(path), doc).WriteFile(out); err != nil {
			return nil, fmt.Errorf("converting scene %s: %w", path, err)
		}

		summary.Scenes++
	}

	for name, path := range inv.Table(inventory.Prefab) {
		obj, err := unity.LoadPrefab(path)
		if err != nil {
			return nil, err
		}

		out := filepath.Join(cfg.TargetRoot, inventory.Prefab.Category(), name+".tscn")
		if err := conv.ConvertPrefab(name, obj).WriteFile(out); err != nil {
			return nil, fmt.Errorf("converting prefab %s: %w", path, err)
		}

		// Prefabs are assets too: scenes written before this prefab
		// pick up the mapping in the rewrite pass.
		refs.Put(path, out)
		summary.Prefabs++
	}

	log.Info("converted documents", "scenes", summary.Scenes, "prefabs", summary.Prefabs)

	// Stage 4: reference rewrite over everything emitted.
	rewritten, err := rewrite.Apply(cfg.TargetRoot, refs)
	if err != nil {
		return nil, err
	}

	summary.Rewritten = rewritten
	summary.DurationMS = time.Since(start).Milliseconds()
	log.Info("conversion complete",
		"rewritten", rewritten,
		"warnings", len(summary.Diags.Warnings),
		"duration", time.Since(start))

	return summary, nil
}

// ScanOnly builds and returns just the inventory, for the scan command.
func (r *Runner) ScanOnly() (*inventory.Inventory, error) {
	if r.Config.SourceRoot == "" {
		return nil, fmt.Errorf("source root is required")
	}

	return inventory.Scan(r.Config.SourceRoot)
}

func (r *Runner) logger() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}

	return r.Log
}
