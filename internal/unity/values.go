package unity

import (
	"fmt"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// Vec3 is a 3-component vector. Components are float32 because the
// source engine serializes single-precision floats.
type Vec3 struct {
	X, Y, Z float32
}

// Quat is a rotation as a 4-component orientation (x, y, z, w).
type Quat struct {
	X, Y, Z, W float32
}

// ColorRGBA is a color with components in [0, 1].
type ColorRGBA struct {
	R, G, B, A float32
}

// Identity is the no-rotation orientation.
func Identity() Quat {
	return Quat{W: 1}
}

// One is the neutral scale vector.
func One() Vec3 {
	return Vec3{X: 1, Y: 1, Z: 1}
}

// Normalized returns the unit-length orientation, or the identity when
// the input has zero magnitude.
func (q Quat) Normalized() Quat {
	n := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n == 0 {
		return Identity()
	}

	return Quat{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// UnmarshalYAML accepts either a sequence [x, y, z] or a mapping
// {x: ..., y: ..., z: ...}; both forms occur in source documents.
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr []float32

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		if len(arr) != 3 {
			return fmt.Errorf("expected 3 components, got %d", len(arr))
		}

		*v = Vec3{X: arr[0], Y: arr[1], Z: arr[2]}

		return nil

	case yaml.MappingNode:
		var m struct {
			X float32 `yaml:"x"`
			Y float32 `yaml:"y"`
			Z float32 `yaml:"z"`
		}

		err := node.Decode(&m)
		if err != nil {
			return err
		}

		*v = Vec3{X: m.X, Y: m.Y, Z: m.Z}

		return nil

	default:
		return fmt.Errorf("expected sequence or mapping for vector, got %v", node.Kind)
	}
}

// UnmarshalYAML accepts either a sequence [x, y, z, w] or a mapping
// {x: ..., y: ..., z: ..., w: ...}.
func (q *Quat) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var arr []float32

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		if len(arr) != 4 {
			return fmt.Errorf("expected 4 components, got %d", len(arr))
		}

		*q = Quat{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}

		return nil

	case yaml.MappingNode:
		var m struct {
			X float32 `yaml:"x"`
			Y float32 `yaml:"y"`
			Z float32 `yaml:"z"`
			W float32 `yaml:"w"`
		}

		err := node.Decode(&m)
		if err != nil {
			return err
		}

		*q = Quat{X: m.X, Y: m.Y, Z: m.Z, W: m.W}

		return nil

	default:
		return fmt.Errorf("expected sequence or mapping for orientation, got %v", node.Kind)
	}
}

// UnmarshalYAML accepts a mapping {r: ..., g: ..., b: ..., a: ...}.
// A missing alpha defaults to 1.
func (c *ColorRGBA) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping for color, got %v", node.Kind)
	}

	m := struct {
		R float32 `yaml:"r"`
		G float32 `yaml:"g"`
		B float32 `yaml:"b"`
		A float32 `yaml:"a"`
	}{A: 1}

	err := node.Decode(&m)
	if err != nil {
		return err
	}

	*c = ColorRGBA{R: m.R, G: m.G, B: m.B, A: m.A}

	return nil
}
