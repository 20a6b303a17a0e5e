package assets

import (
	"fmt"
	"path/filepath"

	"unity2godot/internal/diagnostic"
	"unity2godot/internal/godot"
	"unity2godot/internal/inventory"
	"unity2godot/internal/unity"
)

// textureSlots maps recognized source texture slots to target material
// properties, in emission order.
var textureSlots = []struct {
	slot string
	prop string
}{
	{"MainTex", "albedo_texture"},
	{"BumpMap", "normal_texture"},
	{"MetallicGlossMap", "metallic_texture"},
}

// Material converts one source material document into a target
// material resource. Recognized scalar fields map directly (with the
// smoothness-to-roughness complement); texture slots are re-encoded
// through the image codec. Unrecognized fields are dropped silently.
func (c *Converter) Material(sourcePath string) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	mat, err := unity.LoadMaterial(sourcePath)
	if err != nil {
		return diags, err
	}

	node := godot.NewNode("StandardMaterial3D", "material")
	doc := godot.NewResource("StandardMaterial3D", node)

	if mat.Color != nil {
		node.AddProp("albedo_color", godot.Color(mat.Color.R, mat.Color.G, mat.Color.B, mat.Color.A))
	}

	if mat.Metallic != nil {
		node.AddProp("metallic", godot.Float32(float32(*mat.Metallic)))
	}

	if mat.Smoothness != nil {
		node.AddProp("roughness", godot.Float32(float32(1-*mat.Smoothness)))
	}

	for _, ts := range textureSlots {
		slot := textureSlot(mat, ts.slot)
		if slot == nil || slot.Texture == "" {
			continue
		}

		srcTex := c.resolveSource(slot.Texture)
		dstTex := filepath.Join(c.TargetRoot, "textures", filepath.Base(srcTex))

		final, err := c.Codec.Reencode(srcTex, dstTex)
		if err != nil {
			// The material stays convertible without the texture;
			// degrade to a warning and drop the slot.
			diags.AddWarning(diagnostic.CodeUnreadableTexture, err.Error(), sourcePath, ts.slot)
			c.logger().Warn("dropping texture slot", "material", sourcePath, "slot", ts.slot, "err", err)

			continue
		}

		node.AddProp(ts.prop, doc.ExtResource(godot.ResPath(c.TargetRoot, final)))
	}

	out := c.targetPath(inventory.Material, sourcePath, ".tres")
	if err := doc.WriteFile(out); err != nil {
		return diags, fmt.Errorf("converting material %s: %w", sourcePath, err)
	}

	c.Refs.Put(sourcePath, out)

	return diags, nil
}

// textureSlot selects a slot field by its source name.
func textureSlot(mat *unity.Material, name string) *unity.TextureSlot {
	switch name {
	case "MainTex":
		return mat.MainTex
	case "BumpMap":
		return mat.BumpMap
	case "MetallicGlossMap":
		return mat.MetallicGlossMap
	default:
		return nil
	}
}
