package assets

import (
	"errors"
	"fmt"

	"unity2godot/internal/common"
	"unity2godot/internal/diagnostic"
	"unity2godot/internal/geometry"
	"unity2godot/internal/inventory"
)

// Mesh converts one source mesh file. Geometry extraction is delegated
// to the external importer; when it reports unavailable, the fallback
// unit cube is written instead.
func (c *Converter) Mesh(sourcePath string) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	g, err := c.Importer.Import(sourcePath)

	switch {
	case errors.Is(err, geometry.ErrUnavailable):
		g = geometry.UnitCube()
		diags.AddInfo(diagnostic.CodeFallbackMesh, "importer unavailable, wrote unit cube", sourcePath, "")
		c.logger().Debug("mesh importer unavailable, using fallback cube", "mesh", sourcePath)
	case err != nil:
		return diags, fmt.Errorf("importing mesh %s: %w", sourcePath, err)
	}

	data, err := geometry.Encode(g)
	if err != nil {
		return diags, fmt.Errorf("encoding mesh %s: %w", sourcePath, err)
	}

	out := c.targetPath(inventory.Mesh, sourcePath, ".mesh")
	if err := common.WriteFile(out, data); err != nil {
		return diags, fmt.Errorf("writing mesh %s: %w", out, err)
	}

	c.Refs.Put(sourcePath, out)

	return diags, nil
}
