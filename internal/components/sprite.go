package components

// AABB is an axis-aligned source rectangle into a sprite sheet, matching
// the teacher's ecs.AABB (internal/core/ecs/types.go).
type AABB struct {
	Min, Max Vector2
}

// Sprite holds the data a rendering system needs to draw an entity.
// Grounded on the teacher's SpriteComponent
// (internal/core/ecs/components/sprite.go).
type Sprite struct {
	TextureID  string
	SourceRect AABB
	Color      Color
	ZOrder     int
	Visible    bool
	FlipX      bool
	FlipY      bool
}

// NewSprite returns a visible, untinted Sprite for the given texture.
func NewSprite(textureID string) Sprite {
	return Sprite{
		TextureID: textureID,
		Color:     Color{R: 255, G: 255, B: 255, A: 255},
		Visible:   true,
	}
}
