package unity

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Component is a tagged variant: a type tag plus an open field bag.
// Exactly one type tag per component; unknown tags are legal and kept.
type Component struct {
	// Type is the component's type tag, e.g. "MeshRenderer".
	Type string
	// Fields holds every remaining key of the component mapping.
	Fields map[string]any
}

// UnmarshalYAML decodes a component mapping, splitting the "Type" key
// off as the tag and keeping everything else in the field bag.
func (c *Component) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping for component, got %v", node.Kind)
	}

	var m map[string]any

	err := node.Decode(&m)
	if err != nil {
		return err
	}

	tag, ok := m["Type"].(string)
	if !ok {
		return fmt.Errorf("component has no Type tag")
	}

	delete(m, "Type")

	c.Type = tag
	c.Fields = m

	return nil
}

// Float returns the named field as a float64, or def when the field is
// absent or not numeric.
func (c Component) Float(name string, def float64) float64 {
	switch v := c.Fields[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Bool returns the named field as a bool, or def when absent.
func (c Component) Bool(name string, def bool) bool {
	if v, ok := c.Fields[name].(bool); ok {
		return v
	}

	return def
}

// Str returns the named field as a string, or def when absent.
func (c Component) Str(name, def string) string {
	if v, ok := c.Fields[name].(string); ok {
		return v
	}

	return def
}

// Vec3 returns the named field decoded as a vector.
func (c Component) Vec3(name string) (Vec3, bool) {
	m, ok := c.Fields[name].(map[string]any)
	if !ok {
		return Vec3{}, false
	}

	return Vec3{
		X: floatAt(m, "x"),
		Y: floatAt(m, "y"),
		Z: floatAt(m, "z"),
	}, true
}

// Color returns the named field decoded as a color. A missing alpha
// defaults to 1.
func (c Component) Color(name string) (ColorRGBA, bool) {
	m, ok := c.Fields[name].(map[string]any)
	if !ok {
		return ColorRGBA{}, false
	}

	col := ColorRGBA{
		R: floatAt(m, "r"),
		G: floatAt(m, "g"),
		B: floatAt(m, "b"),
		A: 1,
	}
	if _, has := m["a"]; has {
		col.A = floatAt(m, "a")
	}

	return col, true
}

// Sub returns the named field as a nested mapping wrapped in a
// Component with an empty tag, so the same accessors apply.
func (c Component) Sub(name string) (Component, bool) {
	m, ok := c.Fields[name].(map[string]any)
	if !ok {
		return Component{}, false
	}

	return Component{Fields: m}, true
}

// Ref returns the source path of an asset reference field of the form
// {Path: "..."}.
func (c Component) Ref(name string) (string, bool) {
	m, ok := c.Fields[name].(map[string]any)
	if !ok {
		return "", false
	}

	path, ok := m["Path"].(string)
	if !ok || path == "" {
		return "", false
	}

	return path, true
}

// RefList returns the source paths of a list-of-references field of
// the form [{Path: "..."}, ...], preserving order. Entries without a
// path are kept as empty strings so indices stay aligned with the
// source list.
func (c Component) RefList(name string) []string {
	list, ok := c.Fields[name].([]any)
	if !ok {
		return nil
	}

	paths := make([]string, len(list))

	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if p, ok := m["Path"].(string); ok {
			paths[i] = p
		}
	}

	return paths
}

// floatAt reads a numeric key from a decoded YAML mapping.
func floatAt(m map[string]any, key string) float32 {
	switch v := m[key].(type) {
	case float64:
		return float32(v)
	case int:
		return float32(v)
	default:
		return 0
	}
}
