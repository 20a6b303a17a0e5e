package godot

// Node mirrors the shape of a source object: a type tag from the
// target type set, a name, an ordered property list and children.
type Node struct {
	Type     string
	Name     string
	Props    []Property
	Children []*Node
}

// Property is one named value on a node. Order is preserved as added.
type Property struct {
	Name  string
	Value Value
}

// NewNode creates a node with the given type tag and name.
func NewNode(typ, name string) *Node {
	return &Node{Type: typ, Name: name}
}

// AddProp appends a property, preserving insertion order.
func (n *Node) AddProp(name string, v Value) {
	n.Props = append(n.Props, Property{Name: name, Value: v})
}

// AddChild appends a child node, preserving insertion order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Prop returns the named property value, if present.
func (n *Node) Prop(name string) (Value, bool) {
	for _, p := range n.Props {
		if p.Name == name {
			return p.Value, true
		}
	}

	return Value{}, false
}
