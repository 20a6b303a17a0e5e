package unity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScene(t *testing.T) {
	yaml := `
GameObjects:
  - Name: Player
    Transform:
      position: {x: 1, y: 2, z: 3}
      rotation: {x: 0, y: 0, z: 0, w: 1}
      scale: [1, 1, 1]
    Components:
      - Type: MeshRenderer
        Materials:
          - Path: Assets/Materials/Red.mat
      - Type: BoxCollider
        Size: {x: 1, y: 2, z: 3}
    Children:
      - Name: Arm
  - Name: Sun
    Components:
      - Type: Light
        Kind: Directional
`

	doc, err := ParseScene([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, doc.GameObjects, 2)

	player := doc.GameObjects[0]
	assert.Equal(t, "Player", player.Name)
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, player.Transform.Position)
	assert.Equal(t, Identity(), player.Transform.Rotation)
	assert.Equal(t, One(), player.Transform.Scale)

	require.Len(t, player.Components, 2)
	assert.Equal(t, "MeshRenderer", player.Components[0].Type)
	assert.Equal(t, "BoxCollider", player.Components[1].Type)

	require.Len(t, player.Children, 1)
	assert.Equal(t, "Arm", player.Children[0].Name)
	// Absent transform blocks come back neutral.
	assert.Equal(t, DefaultTransform(), player.Children[0].Transform)

	sun := doc.GameObjects[1]
	assert.Equal(t, "Directional", sun.Components[0].Str("Kind", "Point"))
}

func TestParsePrefabDefaultsName(t *testing.T) {
	obj, err := ParsePrefab([]byte("Components:\n  - Type: Camera\n"))
	require.NoError(t, err)

	assert.Equal(t, "GameObject", obj.Name)
	assert.Equal(t, DefaultTransform(), obj.Transform)
}

func TestParseSceneRejectsUntaggedComponent(t *testing.T) {
	_, err := ParseScene([]byte("GameObjects:\n  - Name: X\n    Components:\n      - Mass: 2\n"))
	assert.Error(t, err)
}

func TestParseAnimationDefaults(t *testing.T) {
	clip, err := ParseAnimation([]byte(`
tracks:
  - path: Body/Arm
    keys:
      - time: 0.0
        value:
          position: [0, 1, 0]
      - time: 0.5
        value:
          position: [0, 2, 0]
          rotation: [0, 0, 0, 1]
          scale: [2, 2, 2]
`))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, clip.Length, 1e-9)
	assert.False(t, clip.Loop)

	require.Len(t, clip.Tracks, 1)
	track := clip.Tracks[0]
	assert.Equal(t, "Body/Arm", track.Path)
	require.Len(t, track.Keys, 2)

	// Absent rotation/scale on the first key fall back to neutral.
	assert.Equal(t, Identity(), track.Keys[0].Value.Rotation)
	assert.Equal(t, One(), track.Keys[0].Value.Scale)
	assert.Equal(t, Vec3{X: 2, Y: 2, Z: 2}, track.Keys[1].Value.Scale)
}
