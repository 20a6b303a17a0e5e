package geometry

import "errors"

// Vec3 is one vertex position. Single precision, matching the binary
// mesh layout.
type Vec3 struct {
	X, Y, Z float32
}

// Geometry is an indexed triangle mesh.
type Geometry struct {
	Vertices []Vec3
	Indices  []uint32
}

// Importer extracts geometry from a source mesh file. Implementations
// report ErrUnavailable when they cannot produce real geometry, which
// triggers the fallback cube.
type Importer interface {
	Import(sourceMeshPath string) (*Geometry, error)
}

// ErrUnavailable reports that an importer cannot produce geometry for
// the given file.
var ErrUnavailable = errors.New("mesh importer unavailable")

// NoImporter is the shipped Importer: it always reports
// ErrUnavailable, so every mesh falls back to the unit cube.
type NoImporter struct{}

// Import implements Importer.
func (NoImporter) Import(string) (*Geometry, error) {
	return nil, ErrUnavailable
}

// UnitCube returns the fallback mesh: 8 vertices and 12 triangles
// spanning [-1, 1] on every axis.
func UnitCube() *Geometry {
	return &Geometry{
		Vertices: []Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Indices: []uint32{
			0, 1, 2, 2, 3, 0, // front
			1, 5, 6, 6, 2, 1, // right
			5, 4, 7, 7, 6, 5, // back
			4, 0, 3, 3, 7, 4, // left
			3, 2, 6, 6, 7, 3, // top
			4, 5, 1, 1, 0, 4, // bottom
		},
	}
}
