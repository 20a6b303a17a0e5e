package assets

import (
	"log/slog"
	"path/filepath"

	"unity2godot/internal/common"
	"unity2godot/internal/geometry"
	"unity2godot/internal/imaging"
	"unity2godot/internal/inventory"
	"unity2godot/internal/refmap"
)

// Converter holds the collaborators shared by all asset conversions of
// one run.
type Converter struct {
	SourceRoot string
	TargetRoot string
	Refs       *refmap.Table
	Codec      *imaging.Codec
	Importer   geometry.Importer
	Log        *slog.Logger
}

// targetPath computes the deterministic output path for a source asset.
func (c *Converter) targetPath(kind inventory.AssetKind, sourcePath, ext string) string {
	return filepath.Join(c.TargetRoot, kind.Category(), common.BareName(sourcePath)+ext)
}

// resolveSource turns a path found inside a document into an absolute
// source path.
func (c *Converter) resolveSource(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(c.SourceRoot, filepath.FromSlash(path))
}

func (c *Converter) logger() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}

	return c.Log
}
