package unity

// SceneDoc is a top-level scene document: root-level objects under an
// implicit scene root.
type SceneDoc struct {
	GameObjects []GameObject `yaml:"GameObjects"`
}

// GameObject is a named node in the source hierarchy. Each object owns
// its children exclusively; the tree is acyclic and rooted.
type GameObject struct {
	Name       string       `yaml:"Name"`
	Transform  Transform    `yaml:"Transform"`
	Components []Component  `yaml:"Components"`
	Children   []GameObject `yaml:"Children"`
}

// Transform is the local transform attribute group of a GameObject.
type Transform struct {
	Position Vec3 `yaml:"position"`
	Rotation Quat `yaml:"rotation"`
	Scale    Vec3 `yaml:"scale"`
}

// DefaultTransform is the neutral local transform, used when a source
// object carries no transform block.
func DefaultTransform() Transform {
	return Transform{Rotation: Identity(), Scale: One()}
}

// IsZero reports whether the transform was absent from the document
// (all components zero, which is not a usable transform).
func (t Transform) IsZero() bool {
	return t == Transform{}
}
