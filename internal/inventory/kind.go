package inventory

import "strings"

//go:generate go tool stringer -type=AssetKind -output=assetkind_string.go

// AssetKind classifies a source file by what converter consumes it.
type AssetKind int

const (
	_ AssetKind = iota // skip zero value, use it as a default (invalid) value for AssetKind

	Material
	Mesh
	Animation
	Script
	Prefab
	Scene

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota) - 1
)

// extKinds is the closed extension classification table.
var extKinds = map[string]AssetKind{
	".mat":    Material,
	".fbx":    Mesh,
	".obj":    Mesh,
	".anim":   Animation,
	".cs":     Script,
	".prefab": Prefab,
	".unity":  Scene,
}

// KindForExt classifies a file extension (with leading dot, any case).
// The zero AssetKind means the extension is not convertible.
func KindForExt(ext string) AssetKind {
	return extKinds[strings.ToLower(ext)]
}

// Category returns the target output subdirectory for assets of this kind.
func (k AssetKind) Category() string {
	switch k {
	case Material:
		return "materials"
	case Mesh:
		return "meshes"
	case Animation:
		return "animations"
	case Script:
		return "scripts"
	case Prefab:
		return "prefabs"
	case Scene:
		return "scenes"
	default:
		return ""
	}
}
