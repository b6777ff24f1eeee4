package engine

import "github.com/vovakirdan/walk-the-dog/internal/core"

// Sprite is a whole image placed on the canvas. Backgrounds and barriers
// are sprites.
type Sprite struct {
	image Image
	box   core.Rect
}

// NewSprite places img with its top-left corner at position.
func NewSprite(img Image, position core.Point) Sprite {
	return Sprite{
		image: img,
		box:   core.NewRectAt(position, int16(img.Width()), int16(img.Height())),
	}
}

// Draw renders the full image at the sprite's position.
func (s Sprite) Draw(r Renderer) {
	r.DrawImage(s.image, core.NewRect(0, 0, s.box.W, s.box.H), s.box)
}

// BoundingBox returns the sprite's destination box.
func (s Sprite) BoundingBox() core.Rect {
	return s.box
}

// MoveHorizontally shifts the sprite by distance pixels.
func (s *Sprite) MoveHorizontally(distance int16) {
	s.box.X += distance
}

// SetX places the sprite's left edge at x.
func (s *Sprite) SetX(x int16) {
	s.box.X = x
}

// Right returns the x-coordinate of the sprite's right edge.
func (s Sprite) Right() int16 {
	return s.box.Right()
}
