package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unity2godot/internal/refmap"
)

func writeDoc(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func newTable() *refmap.Table {
	refs := refmap.New()
	refs.Put("Assets/Materials/Red.mat", "/out/materials/Red.tres")
	refs.Put("Assets/Meshes/Crate.fbx", "/out/meshes/Crate.mesh")

	return refs
}

func TestApplyReplacesFilenames(t *testing.T) {
	root := t.TempDir()
	scene := writeDoc(t, root, "scenes/Main.tscn",
		"mesh = \"Crate.fbx\"\nmaterial = \"Red.mat\"\nname = \"Crate\"\n")

	changed, err := Apply(root, newTable())
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	got, err := os.ReadFile(scene)
	require.NoError(t, err)
	assert.Equal(t, "mesh = \"Crate.mesh\"\nmaterial = \"Red.tres\"\nname = \"Crate\"\n", string(got))
}

func TestApplyIdempotent(t *testing.T) {
	root := t.TempDir()
	scene := writeDoc(t, root, "scenes/Main.tscn", "material = \"Red.mat\"\n")
	refs := newTable()

	_, err := Apply(root, refs)
	require.NoError(t, err)

	first, err := os.ReadFile(scene)
	require.NoError(t, err)

	changed, err := Apply(root, refs)
	require.NoError(t, err)
	assert.Zero(t, changed)

	second, err := os.ReadFile(scene)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestApplyTouchesOnlyTextDocuments(t *testing.T) {
	root := t.TempDir()
	mesh := writeDoc(t, root, "meshes/Crate.mesh", "binary Red.mat inside")
	stub := writeDoc(t, root, "scripts/Player.gd", "# Converted from Red.mat reference")

	_, err := Apply(root, newTable())
	require.NoError(t, err)

	gotMesh, _ := os.ReadFile(mesh)
	assert.Equal(t, "binary Red.mat inside", string(gotMesh))

	gotStub, _ := os.ReadFile(stub)
	assert.Equal(t, "# Converted from Red.mat reference", string(gotStub))
}

// A documented imprecision: unrelated content matching a source
// filename substring is rewritten too.
func TestApplyIsBluntTextualSubstitution(t *testing.T) {
	root := t.TempDir()
	scene := writeDoc(t, root, "scenes/Main.tscn", "description = \"uses Red.mat style\"\n")

	_, err := Apply(root, newTable())
	require.NoError(t, err)

	got, _ := os.ReadFile(scene)
	assert.Equal(t, "description = \"uses Red.tres style\"\n", string(got))
}

func TestApplyEmptyTable(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "scenes/Main.tscn", "material = \"Red.mat\"\n")

	changed, err := Apply(root, refmap.New())
	require.NoError(t, err)
	assert.Zero(t, changed)
}
