// Package assets converts individual source assets: materials,
// meshes, animations and scripts.
//
// Each converter reads one source file, writes one target file at
// <target>/<category>/<bare name>.<ext> and registers the pair in the
// reference table. Conversions are independent of each other, so the
// stage runner may execute them concurrently; the table serializes its
// own writes.
package assets
