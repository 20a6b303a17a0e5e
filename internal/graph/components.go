package graph

import (
	"fmt"

	"unity2godot/internal/godot"
	"unity2godot/internal/unity"
)

// componentFunc converts one component onto the node under
// construction. Converters may add properties, synthesize auxiliary
// child nodes, rewrite the proposed node type, or resolve asset
// references; a reference miss means the property is omitted.
type componentFunc func(c *Converter, comp unity.Component, b *nodeBuilder, objPath string)

// componentFuncs is the closed dispatch table. Tags not present here
// fall through to the unhandled branch in convertObject.
var componentFuncs = map[string]componentFunc{
	"MeshFilter":      convertMeshFilter,
	"MeshRenderer":    convertMeshRenderer,
	"Camera":          convertCamera,
	"Light":           convertLight,
	"Rigidbody":       convertRigidbody,
	"BoxCollider":     convertCollider,
	"SphereCollider":  convertCollider,
	"CapsuleCollider": convertCollider,
	"ParticleSystem":  convertParticleSystem,
	"Canvas":          convertCanvas,
	"RectTransform":   convertRectTransform,
	"MonoBehaviour":   convertScript,
}

func convertMeshFilter(c *Converter, comp unity.Component, b *nodeBuilder, objPath string) {
	path, ok := comp.Ref("Mesh")
	if !ok {
		return
	}

	if v, ok := c.extResource(path, objPath); ok {
		b.addProp("mesh", v)
	}
}

func convertMeshRenderer(c *Converter, comp unity.Component, b *nodeBuilder, objPath string) {
	for i, path := range comp.RefList("Materials") {
		if path == "" {
			continue
		}

		if v, ok := c.extResource(path, objPath); ok {
			b.addProp(fmt.Sprintf("material_%d", i), v)
		}
	}
}

func convertCamera(_ *Converter, comp unity.Component, b *nodeBuilder, _ string) {
	b.addProp("fov", godot.Float(comp.Float("FieldOfView", 60)))
	b.addProp("near", godot.Float(comp.Float("NearClipPlane", 0.3)))
	b.addProp("far", godot.Float(comp.Float("FarClipPlane", 1000)))
}

func convertLight(_ *Converter, comp unity.Component, b *nodeBuilder, _ string) {
	// The light kind demands a more specific node type than the one
	// the type table proposed.
	switch comp.Str("Kind", "Point") {
	case "Directional":
		b.setType("DirectionalLight3D")
	case "Spot":
		b.setType("SpotLight3D")
	default:
		b.setType("OmniLight3D")
	}

	col, ok := comp.Color("Color")
	if !ok {
		col = unity.ColorRGBA{R: 1, G: 1, B: 1, A: 1}
	}

	b.addProp("light_color", godot.Color(col.R, col.G, col.B, col.A))
	b.addProp("light_energy", godot.Float(comp.Float("Intensity", 1)))
}

func convertRigidbody(_ *Converter, comp unity.Component, b *nodeBuilder, _ string) {
	b.addProp("mass", godot.Float(comp.Float("Mass", 1)))

	gravity := 0.0
	if comp.Bool("UseGravity", true) {
		gravity = 1.0
	}
	b.addProp("gravity_scale", godot.Float(gravity))

	if comp.Bool("IsKinematic", false) {
		b.setType("AnimatableBody3D")
	}
}

// convertCollider synthesizes the auxiliary shape child: the target
// model wants collision shapes as dedicated child nodes, not
// properties. The shape parameters are embedded as the engine's
// constructor-style literal for inline resource construction.
func convertCollider(_ *Converter, comp unity.Component, b *nodeBuilder, _ string) {
	var shape string

	switch comp.Type {
	case "BoxCollider":
		size, ok := comp.Vec3("Size")
		if !ok {
			size = unity.One()
		}

		shape = fmt.Sprintf("BoxShape3D.new(size = Vector3(%s, %s, %s))",
			godot.Ftoa32(size.X), godot.Ftoa32(size.Y), godot.Ftoa32(size.Z))

	case "SphereCollider":
		shape = fmt.Sprintf("SphereShape3D.new(radius = %s)",
			godot.Ftoa(comp.Float("Radius", 0.5)))

	case "CapsuleCollider":
		shape = fmt.Sprintf("CapsuleShape3D.new(radius = %s, height = %s)",
			godot.Ftoa(comp.Float("Radius", 0.5)), godot.Ftoa(comp.Float("Height", 2)))

	default:
		return
	}

	collider := godot.NewNode("CollisionShape3D", "Collider")
	collider.AddProp("shape", godot.Literal(shape))
	b.addChild(collider)
}

func convertParticleSystem(_ *Converter, comp unity.Component, b *nodeBuilder, _ string) {
	b.addProp("amount", godot.Int(int(comp.Float("MaxParticles", 1000))))
	b.addProp("lifetime", godot.Float(comp.Float("StartLifetime", 5)))
	b.addProp("explosiveness", godot.Float(0))
	b.addProp("randomness", godot.Float(0))
}

func convertCanvas(_ *Converter, comp unity.Component, b *nodeBuilder, _ string) {
	b.addProp("layer", godot.Int(int(comp.Float("RenderMode", 0))))

	scaler, ok := comp.Sub("CanvasScaler")
	if !ok {
		return
	}

	b.addProp("scale_mode", godot.Int(int(scaler.Float("ScaleMode", 0))))

	res, ok := scaler.Vec3("ReferenceResolution")
	if !ok {
		res = unity.Vec3{X: 800, Y: 600}
	}
	b.addProp("reference_resolution", godot.Vector2(res.X, res.Y))
}

func convertRectTransform(_ *Converter, comp unity.Component, b *nodeBuilder, _ string) {
	minAnchor := unity.Vec3{}
	maxAnchor := unity.Vec3{X: 1, Y: 1}

	if anchors, ok := comp.Sub("Anchors"); ok {
		if v, ok := anchors.Vec3("min"); ok {
			minAnchor = v
		}

		if v, ok := anchors.Vec3("max"); ok {
			maxAnchor = v
		}
	}

	b.addProp("anchor_left", godot.Float32(minAnchor.X))
	b.addProp("anchor_top", godot.Float32(minAnchor.Y))
	b.addProp("anchor_right", godot.Float32(maxAnchor.X))
	b.addProp("anchor_bottom", godot.Float32(maxAnchor.Y))
}

func convertScript(c *Converter, comp unity.Component, b *nodeBuilder, objPath string) {
	path, ok := comp.Ref("Script")
	if !ok {
		return
	}

	if v, ok := c.extResource(path, objPath); ok {
		b.addProp("script", v)
	}
}
