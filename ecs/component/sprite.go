package component

// Sprite names the texture an entity is drawn with. The render package
// resolves names to images.
type Sprite struct {
	Texture string
	// AnchorBottomLeft draws from the image's bottom-left corner instead of its center.
	AnchorBottomLeft bool
	// Width and Height, when set, stretch the texture to this size in world units.
	Width  float64
	Height float64
	Z      int
}

var SpriteComponent = NewComponent[Sprite]()
