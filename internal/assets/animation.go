package assets

import (
	"fmt"

	"unity2godot/internal/diagnostic"
	"unity2godot/internal/godot"
	"unity2godot/internal/inventory"
	"unity2godot/internal/unity"
)

// Animation converts one source animation document into a target
// animation document: one Track node per source track, one Key node
// per source key, order preserved.
func (c *Converter) Animation(sourcePath string) (diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	clip, err := unity.LoadAnimation(sourcePath)
	if err != nil {
		return diags, err
	}

	root := godot.NewNode("Animation", "animation")
	root.AddProp("length", godot.Float(clip.Length))
	root.AddProp("loop", godot.Bool(clip.Loop))

	for _, track := range clip.Tracks {
		trackNode := godot.NewNode("Track", track.Path)
		trackNode.AddProp("type", godot.Str("transform"))
		trackNode.AddProp("path", godot.NodePath(track.Path))
		root.AddChild(trackNode)

		keysNode := godot.NewNode("Keys", "Keys")
		trackNode.AddChild(keysNode)

		for i, key := range track.Keys {
			keyNode := godot.NewNode("Key", fmt.Sprintf("Key%d", i))
			keyNode.AddProp("time", godot.Float(key.Time))
			keyNode.AddProp("transform", godot.Literal(TransformLiteral(key.Value)))
			keysNode.AddChild(keyNode)
		}
	}

	out := c.targetPath(inventory.Animation, sourcePath, ".anim")
	if err := godot.NewScene(root).WriteFile(out); err != nil {
		return diags, fmt.Errorf("converting animation %s: %w", sourcePath, err)
	}

	c.Refs.Put(sourcePath, out)

	return diags, nil
}

// TransformLiteral renders a keyframe transform as the inline
// constructor form Transform(scale, orientation, position). The
// orientation is normalized before emission.
func TransformLiteral(kt unity.KeyTransform) string {
	q := kt.Rotation.Normalized()

	return fmt.Sprintf("Transform(Vector3(%s, %s, %s), Quat(%s, %s, %s, %s), Vector3(%s, %s, %s))",
		godot.Ftoa32(kt.Scale.X), godot.Ftoa32(kt.Scale.Y), godot.Ftoa32(kt.Scale.Z),
		godot.Ftoa32(q.X), godot.Ftoa32(q.Y), godot.Ftoa32(q.Z), godot.Ftoa32(q.W),
		godot.Ftoa32(kt.Position.X), godot.Ftoa32(kt.Position.Y), godot.Ftoa32(kt.Position.Z))
}
