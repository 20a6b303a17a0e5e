package unity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScene loads and parses a scene document from the given path.
func LoadScene(path string) (*SceneDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	return ParseScene(data)
}

// ParseScene parses YAML data into a SceneDoc.
func ParseScene(data []byte) (*SceneDoc, error) {
	var doc SceneDoc

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	for i := range doc.GameObjects {
		applyObjectDefaults(&doc.GameObjects[i])
	}

	return &doc, nil
}

// LoadPrefab loads and parses a prefab document: a single root object.
func LoadPrefab(path string) (*GameObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefab %s: %w", path, err)
	}

	return ParsePrefab(data)
}

// ParsePrefab parses YAML data into a root GameObject.
func ParsePrefab(data []byte) (*GameObject, error) {
	var obj GameObject

	err := yaml.Unmarshal(data, &obj)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prefab YAML: %w", err)
	}

	applyObjectDefaults(&obj)

	return &obj, nil
}

// LoadMaterial loads and parses a material document.
func LoadMaterial(path string) (*Material, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read material %s: %w", path, err)
	}

	var mat Material

	err = yaml.Unmarshal(data, &mat)
	if err != nil {
		return nil, fmt.Errorf("failed to parse material YAML %s: %w", path, err)
	}

	return &mat, nil
}

// LoadAnimation loads and parses an animation document.
func LoadAnimation(path string) (*AnimationClip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation %s: %w", path, err)
	}

	return ParseAnimation(data)
}

// ParseAnimation parses YAML data into an AnimationClip.
func ParseAnimation(data []byte) (*AnimationClip, error) {
	clip := AnimationClip{Length: 1.0}

	err := yaml.Unmarshal(data, &clip)
	if err != nil {
		return nil, fmt.Errorf("failed to parse animation YAML: %w", err)
	}

	for i := range clip.Tracks {
		for j := range clip.Tracks[i].Keys {
			applyKeyDefaults(&clip.Tracks[i].Keys[j].Value)
		}
	}

	return &clip, nil
}

// applyObjectDefaults fills in default values for optional fields,
// recursively over children.
func applyObjectDefaults(obj *GameObject) {
	if obj.Name == "" {
		obj.Name = "GameObject"
	}

	if obj.Transform.IsZero() {
		obj.Transform = DefaultTransform()
	}

	for i := range obj.Children {
		applyObjectDefaults(&obj.Children[i])
	}
}

// applyKeyDefaults normalizes an absent orientation to identity and an
// absent scale to one, matching the source engine's defaults.
func applyKeyDefaults(kt *KeyTransform) {
	if (kt.Rotation == Quat{}) {
		kt.Rotation = Identity()
	}

	if (kt.Scale == Vec3{}) {
		kt.Scale = One()
	}
}
