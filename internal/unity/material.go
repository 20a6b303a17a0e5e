package unity

// Material is a source material document. Only the recognized fields
// below are decoded; everything else in the document is dropped.
type Material struct {
	Color      *ColorRGBA `yaml:"Color"`
	Metallic   *float64   `yaml:"Metallic"`
	Smoothness *float64   `yaml:"Smoothness"`

	MainTex          *TextureSlot `yaml:"MainTex"`
	BumpMap          *TextureSlot `yaml:"BumpMap"`
	MetallicGlossMap *TextureSlot `yaml:"MetallicGlossMap"`
}

// TextureSlot is a texture reference inside a material document.
type TextureSlot struct {
	Texture string `yaml:"Texture"`
}
