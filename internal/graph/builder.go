package graph

import "unity2godot/internal/godot"

// nodeBuilder accumulates one target node during component
// processing. The type is a proposal until build: component converters
// may rewrite it (lights, kinematic rigid bodies), last applicable
// rewrite wins, and no other logic observes a partially-typed node.
type nodeBuilder struct {
	typ      string
	name     string
	props    []godot.Property
	children []*godot.Node
}

func newNodeBuilder(typ, name string) *nodeBuilder {
	return &nodeBuilder{typ: typ, name: name}
}

// setType rewrites the proposed node type.
func (b *nodeBuilder) setType(typ string) {
	b.typ = typ
}

// addProp appends a property, preserving insertion order.
func (b *nodeBuilder) addProp(name string, v godot.Value) {
	b.props = append(b.props, godot.Property{Name: name, Value: v})
}

// addChild appends an auxiliary child node.
func (b *nodeBuilder) addChild(child *godot.Node) {
	b.children = append(b.children, child)
}

// build finalizes the node with the last proposed type.
func (b *nodeBuilder) build() *godot.Node {
	return &godot.Node{
		Type:     b.typ,
		Name:     b.name,
		Props:    b.props,
		Children: b.children,
	}
}
