package graph

import (
	"log/slog"

	"unity2godot/internal/diagnostic"
	"unity2godot/internal/godot"
	"unity2godot/internal/refmap"
	"unity2godot/internal/unity"
)

// Converter turns source object trees into target node trees. It
// consumes a fully populated reference table; lookups that still miss
// degrade to omitted properties and a diagnostic.
type Converter struct {
	// Refs is the run's reference table.
	Refs *refmap.Table
	// TargetRoot anchors res:// reference paths.
	TargetRoot string
	// ExtraTypes extends the closed type table from configuration.
	ExtraTypes map[string]string
	// Diags collects unrecognized-component and unresolved-reference
	// findings.
	Diags *diagnostic.Diagnostics
	// Log receives a debug line per skipped unit.
	Log *slog.Logger

	// doc is the document under construction; set per conversion.
	doc *godot.Document
	// docName labels diagnostics for the current document.
	docName string
}

// ConvertScene converts a top-level scene document: every root-level
// object goes under an implicit scene root.
func (c *Converter) ConvertScene(docName string, scene *unity.SceneDoc) *godot.Document {
	root := godot.NewNode(DefaultNodeType, "Scene")
	doc := godot.NewScene(root)

	c.doc = doc
	c.docName = docName

	for i := range scene.GameObjects {
		root.AddChild(c.convertObject(&scene.GameObjects[i], ""))
	}

	return doc
}

// ConvertPrefab converts a single prefab root object under a container
// named after the prefab.
func (c *Converter) ConvertPrefab(prefabName string, obj *unity.GameObject) *godot.Document {
	root := godot.NewNode(DefaultNodeType, prefabName)
	doc := godot.NewScene(root)

	c.doc = doc
	c.docName = prefabName

	root.AddChild(c.convertObject(obj, ""))

	return doc
}

// convertObject converts one source object and its subtree. parentPath
// is the slash-joined object path used in diagnostics.
func (c *Converter) convertObject(obj *unity.GameObject, parentPath string) *godot.Node {
	objPath := obj.Name
	if parentPath != "" {
		objPath = parentPath + "/" + obj.Name
	}

	b := newNodeBuilder(c.resolveType(obj), obj.Name)
	c.applyTransform(obj.Transform, b)

	for _, comp := range obj.Components {
		fn, ok := componentFuncs[comp.Type]
		if !ok {
			if _, mapped := c.ExtraTypes[comp.Type]; mapped {
				// A config-mapped tag already did its job in
				// resolveType; it has no properties to convert.
				c.logger().Debug("no property converter for mapped component", "type", comp.Type, "object", objPath)

				continue
			}

			// Unknown tags are logged and skipped, never fatal.
			c.Diags.AddWarning(diagnostic.CodeUnhandledComponent,
				"unhandled component type: "+comp.Type, c.docName, objPath)
			c.logger().Debug("skipping unhandled component", "type", comp.Type, "object", objPath)

			continue
		}

		fn(c, comp, b, objPath)
	}

	node := b.build()

	for i := range obj.Children {
		node.AddChild(c.convertObject(&obj.Children[i], objPath))
	}

	return node
}

// resolveType scans the component list in order and picks the target
// mapping of the first recognized tag; objects with no recognized
// component become generic containers.
func (c *Converter) resolveType(obj *unity.GameObject) string {
	for _, comp := range obj.Components {
		if t, ok := c.ExtraTypes[comp.Type]; ok {
			return t
		}

		if t, ok := nodeTypes[comp.Type]; ok {
			return t
		}
	}

	return DefaultNodeType
}

// applyTransform copies the local transform onto the node.
func (c *Converter) applyTransform(tr unity.Transform, b *nodeBuilder) {
	if tr.Position != (unity.Vec3{}) {
		b.addProp("position", godot.Vector3(tr.Position.X, tr.Position.Y, tr.Position.Z))
	}

	if q := tr.Rotation.Normalized(); q != unity.Identity() {
		b.addProp("quaternion", godot.Quaternion(q.X, q.Y, q.Z, q.W))
	}

	if tr.Scale != unity.One() {
		b.addProp("scale", godot.Vector3(tr.Scale.X, tr.Scale.Y, tr.Scale.Z))
	}
}

// extResource resolves a source asset path through the reference table
// and returns the property value. A miss reports ok=false; the caller
// omits the property.
func (c *Converter) extResource(sourcePath, objPath string) (godot.Value, bool) {
	target, ok := c.Refs.Get(sourcePath)
	if !ok {
		c.Diags.AddWarning(diagnostic.CodeUnresolvedReference,
			"unresolved asset reference: "+sourcePath, c.docName, objPath)
		c.logger().Debug("omitting unresolved reference", "asset", sourcePath, "object", objPath)

		return godot.Value{}, false
	}

	return c.doc.ExtResource(godot.ResPath(c.TargetRoot, target)), true
}

func (c *Converter) logger() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}

	return c.Log
}
