package unity

// AnimationClip is a source animation document: clip length, loop flag
// and an ordered list of tracks.
type AnimationClip struct {
	Length float64          `yaml:"length"`
	Loop   bool             `yaml:"loop"`
	Tracks []AnimationTrack `yaml:"tracks"`
}

// AnimationTrack targets one node path with an ordered list of keys.
type AnimationTrack struct {
	Path string         `yaml:"path"`
	Keys []AnimationKey `yaml:"keys"`
}

// AnimationKey is one keyframe: a time and a transform value.
type AnimationKey struct {
	Time  float64      `yaml:"time"`
	Value KeyTransform `yaml:"value"`
}

// KeyTransform is the position/orientation/scale triple of a keyframe.
type KeyTransform struct {
	Position Vec3 `yaml:"position"`
	Rotation Quat `yaml:"rotation"`
	Scale    Vec3 `yaml:"scale"`
}
