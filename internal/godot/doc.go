// Package godot models the target engine's node documents and
// serializes them to the text scene/resource format.
//
// Key types:
//   - Node: type tag + name + ordered properties + children
//   - Value: a typed literal or an external-resource reference
//   - Document: a scene (.tscn) or resource (.tres) with its
//     ext-resource declarations, assigned deterministic ids in
//     first-use order
package godot
