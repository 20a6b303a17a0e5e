package graph

// DefaultNodeType is the generic 3D container used when no component
// of an object carries a recognized type tag.
const DefaultNodeType = "Node3D"

// nodeTypes is the closed source-type to target-type table. The first
// component of an object whose tag appears here decides the node type;
// component order in the source is the priority signal.
var nodeTypes = map[string]string{
	"Transform":       "Node3D",
	"MeshRenderer":    "MeshInstance3D",
	"Camera":          "Camera3D",
	"Light":           "Light3D",
	"Rigidbody":       "RigidBody3D",
	"BoxCollider":     "CollisionShape3D",
	"SphereCollider":  "CollisionShape3D",
	"CapsuleCollider": "CollisionShape3D",
	"Canvas":          "CanvasLayer",
	"RectTransform":   "Control",
	"Image":           "TextureRect",
	"Text":            "Label",
	"Button":          "Button",
	"ParticleSystem":  "GPUParticles3D",
}
