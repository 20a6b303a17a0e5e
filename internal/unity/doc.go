// Package unity models the source project's object hierarchy and asset
// documents and decodes them from YAML.
//
// Key types:
//   - SceneDoc: a scene document with its root-level GameObjects
//   - GameObject: name + transform + ordered components + children
//   - Component: a type tag with an open field bag and typed accessors
//   - Material, AnimationClip: structured asset documents
//
// Unknown component tags and unknown fields are preserved in the field
// bag rather than rejected; deciding what to do with them is the
// converter's job.
package unity
