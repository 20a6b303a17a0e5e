package godot

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"unity2godot/internal/common"
)

// Document is one emitted target file: either a scene (.tscn) or a
// standalone resource (.tres). It owns the ext-resource declarations
// referenced from node properties; ids are assigned in first-use
// order, which keeps serialization deterministic.
type Document struct {
	// resType is the resource type of a .tres document; empty for scenes.
	resType string
	root    *Node

	extPaths []string
	extIDs   map[string]string
}

// NewScene creates a scene document with the given root node.
func NewScene(root *Node) *Document {
	return &Document{root: root, extIDs: make(map[string]string)}
}

// NewResource creates a resource document of the given type. Root node
// properties become the [resource] section; the root's type and name
// are not serialized.
func NewResource(resType string, root *Node) *Document {
	return &Document{resType: resType, root: root, extIDs: make(map[string]string)}
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// ExtResource declares (or reuses) an external resource reference to
// the given target path and returns the property value for it.
func (d *Document) ExtResource(path string) Value {
	id, ok := d.extIDs[path]
	if !ok {
		id = strconv.Itoa(len(d.extPaths) + 1)
		d.extIDs[path] = id
		d.extPaths = append(d.extPaths, path)
	}

	return Value{Kind: KindExtResource, Raw: fmt.Sprintf("ExtResource(%q)", id), Path: path}
}

// Serialize renders the document to its text form.
func (d *Document) Serialize() []byte {
	var b strings.Builder

	steps := len(d.extPaths) + 1
	if d.resType != "" {
		fmt.Fprintf(&b, "[gd_resource type=%q load_steps=%d format=3]\n", d.resType, steps)
	} else {
		fmt.Fprintf(&b, "[gd_scene load_steps=%d format=3]\n", steps)
	}

	for _, path := range d.extPaths {
		fmt.Fprintf(&b, "\n[ext_resource type=%q path=%q id=%q]\n",
			ResourceType(path), path, d.extIDs[path])
	}

	if d.root == nil {
		return []byte(b.String())
	}

	if d.resType != "" {
		b.WriteString("\n[resource]\n")
		writeProps(&b, d.root)
	} else {
		writeNode(&b, d.root, "")
	}

	return []byte(b.String())
}

// WriteFile serializes the document to path, creating parent
// directories as needed.
func (d *Document) WriteFile(path string) error {
	if err := common.WriteFile(path, d.Serialize()); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}

	return nil
}

// writeNode emits one [node] section and recurses into children.
// parent is the path of the node's parent: "" for the root, "." for
// the root's children, then slash-joined names below that.
func writeNode(b *strings.Builder, n *Node, parent string) {
	if parent == "" {
		fmt.Fprintf(b, "\n[node name=%q type=%q]\n", n.Name, n.Type)
	} else {
		fmt.Fprintf(b, "\n[node name=%q type=%q parent=%q]\n", n.Name, n.Type, parent)
	}

	writeProps(b, n)

	childParent := "."
	if parent == "." {
		childParent = n.Name
	} else if parent != "" {
		childParent = parent + "/" + n.Name
	}

	for _, child := range n.Children {
		writeNode(b, child, childParent)
	}
}

func writeProps(b *strings.Builder, n *Node) {
	for _, p := range n.Props {
		fmt.Fprintf(b, "%s = %s\n", p.Name, p.Value.Raw)
	}
}

// ResourceType maps a target asset path to the engine resource type
// declared in its ext_resource entry.
func ResourceType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tres":
		return "Material"
	case ".mesh":
		return "Mesh"
	case ".gd":
		return "Script"
	case ".tscn":
		return "PackedScene"
	case ".anim":
		return "Animation"
	default:
		return "Texture2D"
	}
}

// ResPath converts an absolute target path into the engine's
// project-relative res:// form. Paths outside the target root are
// returned unchanged.
func ResPath(targetRoot, path string) string {
	rel, err := filepath.Rel(targetRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return "res://" + filepath.ToSlash(rel)
}
