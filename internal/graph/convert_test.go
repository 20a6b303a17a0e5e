package graph

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unity2godot/internal/diagnostic"
	"unity2godot/internal/godot"
	"unity2godot/internal/refmap"
	"unity2godot/internal/unity"
)

func newTestConverter() *Converter {
	return &Converter{
		Refs:       refmap.New(),
		TargetRoot: "/out",
		Diags:      &diagnostic.Diagnostics{},
	}
}

func comp(typ string, fields map[string]any) unity.Component {
	if fields == nil {
		fields = map[string]any{}
	}

	return unity.Component{Type: typ, Fields: fields}
}

// convertOne runs a single object through a scene conversion and
// returns its node.
func convertOne(t *testing.T, c *Converter, obj unity.GameObject) *godot.Node {
	t.Helper()

	doc := c.ConvertScene("test.unity", &unity.SceneDoc{GameObjects: []unity.GameObject{obj}})
	root := doc.Root()
	require.Len(t, root.Children, 1, spew.Sdump(root))

	return root.Children[0]
}

func TestDefaultTypeWithNoRecognizedComponents(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:       "Mystery",
		Transform:  unity.DefaultTransform(),
		Components: []unity.Component{comp("AudioSource", nil), comp("NavMeshAgent", nil)},
	})

	assert.Equal(t, DefaultNodeType, node.Type)
	// Both unknown tags are logged, not fatal.
	assert.Len(t, c.Diags.Warnings, 2)
	assert.Empty(t, c.Diags.Errors)
}

func TestFirstRecognizedTagWins(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:      "Player",
		Transform: unity.DefaultTransform(),
		Components: []unity.Component{
			comp("AudioSource", nil), // unrecognized, skipped
			comp("Camera", nil),
			comp("Rigidbody", nil), // recognized but not first
		},
	})

	assert.Equal(t, "Camera3D", node.Type, spew.Sdump(node))
}

func TestTransformProperties(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name: "Crate",
		Transform: unity.Transform{
			Position: unity.Vec3{X: 1, Y: 2, Z: 3},
			Rotation: unity.Quat{Y: 2}, // denormalized on purpose
			Scale:    unity.Vec3{X: 2, Y: 2, Z: 2},
		},
	})

	pos, ok := node.Prop("position")
	require.True(t, ok)
	assert.Equal(t, "Vector3(1, 2, 3)", pos.Raw)

	q, ok := node.Prop("quaternion")
	require.True(t, ok)
	assert.Equal(t, "Quaternion(0, 1, 0, 0)", q.Raw)

	scale, ok := node.Prop("scale")
	require.True(t, ok)
	assert.Equal(t, "Vector3(2, 2, 2)", scale.Raw)
}

func TestNeutralTransformEmitsNoProperties(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{Name: "Empty", Transform: unity.DefaultTransform()})

	assert.Empty(t, node.Props, spew.Sdump(node))
}

func TestSphereColliderAuxiliaryChild(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:      "Ball",
		Transform: unity.DefaultTransform(),
		Components: []unity.Component{
			comp("SphereCollider", map[string]any{"Radius": 2.5}),
		},
	})

	require.Len(t, node.Children, 1, spew.Sdump(node))
	shape := node.Children[0]
	assert.Equal(t, "CollisionShape3D", shape.Type)
	assert.Equal(t, "Collider", shape.Name)

	v, ok := shape.Prop("shape")
	require.True(t, ok)
	assert.Equal(t, "SphereShape3D.new(radius = 2.5)", v.Raw)
}

func TestMeshRendererThenBoxCollider(t *testing.T) {
	c := newTestConverter()
	c.Refs.Put("Assets/Materials/Red.mat", "/out/materials/Red.tres")

	node := convertOne(t, c, unity.GameObject{
		Name:      "Crate",
		Transform: unity.DefaultTransform(),
		Components: []unity.Component{
			comp("MeshRenderer", map[string]any{
				"Materials": []any{map[string]any{"Path": "Assets/Materials/Red.mat"}},
			}),
			comp("BoxCollider", map[string]any{
				"Size": map[string]any{"x": 1, "y": 2, "z": 3},
			}),
		},
	})

	// First recognized tag decides the type; the collider still adds
	// its auxiliary child.
	assert.Equal(t, "MeshInstance3D", node.Type)

	mat, ok := node.Prop("material_0")
	require.True(t, ok)
	assert.Equal(t, godot.KindExtResource, mat.Kind)
	assert.Equal(t, "res://materials/Red.tres", mat.Path)

	require.Len(t, node.Children, 1)
	v, ok := node.Children[0].Prop("shape")
	require.True(t, ok)
	assert.Equal(t, "BoxShape3D.new(size = Vector3(1, 2, 3))", v.Raw)
}

func TestCapsuleColliderDefaults(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:       "Pill",
		Transform:  unity.DefaultTransform(),
		Components: []unity.Component{comp("CapsuleCollider", nil)},
	})

	v, ok := node.Children[0].Prop("shape")
	require.True(t, ok)
	assert.Equal(t, "CapsuleShape3D.new(radius = 0.5, height = 2)", v.Raw)
}

func TestLightKindRewritesType(t *testing.T) {
	cases := []struct {
		kind string
		typ  string
	}{
		{"Directional", "DirectionalLight3D"},
		{"Spot", "SpotLight3D"},
		{"Point", "OmniLight3D"},
		{"", "OmniLight3D"},
	}

	for _, tc := range cases {
		c := newTestConverter()

		fields := map[string]any{}
		if tc.kind != "" {
			fields["Kind"] = tc.kind
		}

		node := convertOne(t, c, unity.GameObject{
			Name:       "Lamp",
			Transform:  unity.DefaultTransform(),
			Components: []unity.Component{comp("Light", fields)},
		})

		assert.Equal(t, tc.typ, node.Type, "kind %q", tc.kind)

		col, ok := node.Prop("light_color")
		require.True(t, ok)
		assert.Equal(t, "Color(1, 1, 1, 1)", col.Raw)

		energy, ok := node.Prop("light_energy")
		require.True(t, ok)
		assert.Equal(t, "1", energy.Raw)
	}
}

func TestKinematicRigidbodyRewritesType(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:      "Platform",
		Transform: unity.DefaultTransform(),
		Components: []unity.Component{
			comp("Rigidbody", map[string]any{"IsKinematic": true, "UseGravity": false, "Mass": 10}),
		},
	})

	assert.Equal(t, "AnimatableBody3D", node.Type)

	mass, _ := node.Prop("mass")
	assert.Equal(t, "10", mass.Raw)

	gravity, _ := node.Prop("gravity_scale")
	assert.Equal(t, "0", gravity.Raw)
}

func TestUnresolvedReferenceOmitsProperty(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:      "Crate",
		Transform: unity.DefaultTransform(),
		Components: []unity.Component{
			comp("MeshFilter", map[string]any{
				"Mesh": map[string]any{"Path": "Assets/Meshes/Crate.fbx"},
			}),
		},
	})

	_, ok := node.Prop("mesh")
	assert.False(t, ok)

	require.Len(t, c.Diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnresolvedReference, c.Diags.Warnings[0].Code)
	assert.Equal(t, "Crate", c.Diags.Warnings[0].NodePath)
}

func TestScriptReference(t *testing.T) {
	c := newTestConverter()
	c.Refs.Put("Assets/Scripts/Player.cs", "/out/scripts/Player.gd")

	node := convertOne(t, c, unity.GameObject{
		Name:      "Player",
		Transform: unity.DefaultTransform(),
		Components: []unity.Component{
			comp("MonoBehaviour", map[string]any{
				"Script": map[string]any{"Path": "Assets/Scripts/Player.cs"},
			}),
		},
	})

	script, ok := node.Prop("script")
	require.True(t, ok)
	assert.Equal(t, "res://scripts/Player.gd", script.Path)
}

func TestChildOrderPreserved(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:      "Parent",
		Transform: unity.DefaultTransform(),
		Children: []unity.GameObject{
			{Name: "First", Transform: unity.DefaultTransform()},
			{Name: "Second", Transform: unity.DefaultTransform()},
			{Name: "Third", Transform: unity.DefaultTransform()},
		},
	})

	require.Len(t, node.Children, 3)
	assert.Equal(t, "First", node.Children[0].Name)
	assert.Equal(t, "Second", node.Children[1].Name)
	assert.Equal(t, "Third", node.Children[2].Name)
}

func TestAuxiliaryChildPrecedesConvertedChildren(t *testing.T) {
	c := newTestConverter()

	node := convertOne(t, c, unity.GameObject{
		Name:       "Crate",
		Transform:  unity.DefaultTransform(),
		Components: []unity.Component{comp("BoxCollider", nil)},
		Children:   []unity.GameObject{{Name: "Lid", Transform: unity.DefaultTransform()}},
	})

	require.Len(t, node.Children, 2)
	assert.Equal(t, "Collider", node.Children[0].Name)
	assert.Equal(t, "Lid", node.Children[1].Name)
}

func TestConvertPrefab(t *testing.T) {
	c := newTestConverter()

	doc := c.ConvertPrefab("Enemy", &unity.GameObject{
		Name:       "EnemyRoot",
		Transform:  unity.DefaultTransform(),
		Components: []unity.Component{comp("Rigidbody", nil)},
	})

	root := doc.Root()
	assert.Equal(t, "Enemy", root.Name)
	assert.Equal(t, DefaultNodeType, root.Type)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "RigidBody3D", root.Children[0].Type)
}

func TestExtraTypesFromConfig(t *testing.T) {
	c := newTestConverter()
	c.ExtraTypes = map[string]string{"Terrain": "StaticBody3D"}

	node := convertOne(t, c, unity.GameObject{
		Name:       "Ground",
		Transform:  unity.DefaultTransform(),
		Components: []unity.Component{comp("Terrain", nil)},
	})

	assert.Equal(t, "StaticBody3D", node.Type)

	// A tag the user explicitly mapped is handled, not unhandled.
	assert.Empty(t, c.Diags.Warnings, spew.Sdump(c.Diags))
}
