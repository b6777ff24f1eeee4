package walkdog

import (
	"fmt"

	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog/redhatboy"
)

// Obstacle is a Barrier or a Platform.
type Obstacle interface {
	Draw(r engine.Renderer, debug bool)
	MoveHorizontally(dx int16)
	// Right is the x-coordinate of the obstacle's right edge.
	Right() int16
	// CheckIntersection knocks out or lands the character on contact.
	CheckIntersection(boy *redhatboy.RedHatBoy)
	obstacle()
}

// Barrier is a single image with a single bounding box. A solid barrier
// knocks out anything it touches; otherwise it is scenery.
type Barrier struct {
	sprite engine.Sprite
	solid  bool
}

// NewBarrier places img with its top-left corner at position.
func NewBarrier(img engine.Image, position core.Point, solid bool) *Barrier {
	return &Barrier{sprite: engine.NewSprite(img, position), solid: solid}
}

func (b *Barrier) obstacle() {}

// BoundingBox returns the barrier's collision box.
func (b *Barrier) BoundingBox() core.Rect {
	return b.sprite.BoundingBox()
}

func (b *Barrier) Draw(r engine.Renderer, debug bool) {
	b.sprite.Draw(r)
	if debug {
		r.DrawRect(b.sprite.BoundingBox())
	}
}

func (b *Barrier) MoveHorizontally(dx int16) {
	b.sprite.MoveHorizontally(dx)
}

func (b *Barrier) Right() int16 {
	return b.sprite.Right()
}

func (b *Barrier) CheckIntersection(boy *redhatboy.RedHatBoy) {
	if b.solid && boy.BoundingBox().Intersects(b.sprite.BoundingBox()) {
		boy.KnockOut()
	}
}

// Platform is a row of tiles from a shared sprite sheet with its own list
// of bounding boxes. Only the boxes collide; the tiles are drawn left to
// right from the platform's position.
type Platform struct {
	sheet    *engine.SpriteSheet
	position core.Point
	sprites  []engine.Cell
	boxes    []core.Rect
}

// NewPlatform creates a platform at position. Each box is relative to the
// position. Every sprite name must exist in the sheet.
func NewPlatform(sheet *engine.SpriteSheet, position core.Point, spriteNames []string, boxes []core.Rect) *Platform {
	sprites := make([]engine.Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		cell, ok := sheet.Cell(name)
		if !ok {
			panic(fmt.Sprintf("walkdog: tile sheet has no cell %q", name))
		}
		sprites = append(sprites, cell)
	}

	absolute := make([]core.Rect, len(boxes))
	for i, box := range boxes {
		absolute[i] = box.Translate(position.X, position.Y)
	}

	return &Platform{
		sheet:    sheet,
		position: position,
		sprites:  sprites,
		boxes:    absolute,
	}
}

func (p *Platform) obstacle() {}

// Position returns the platform's anchor, the top-left of its first tile.
func (p *Platform) Position() core.Point {
	return p.position
}

// BoundingBoxes returns the platform's collision boxes in canvas coordinates.
func (p *Platform) BoundingBoxes() []core.Rect {
	return append([]core.Rect(nil), p.boxes...)
}

func (p *Platform) Draw(r engine.Renderer, debug bool) {
	x := p.position.X
	for _, cell := range p.sprites {
		dest := core.NewRect(x, p.position.Y, cell.Frame.W, cell.Frame.H)
		p.sheet.Draw(r, cell.Frame.Rect(), dest)
		x += cell.Frame.W
	}
	if debug {
		for _, box := range p.boxes {
			r.DrawRect(box)
		}
	}
}

func (p *Platform) MoveHorizontally(dx int16) {
	p.position.X += dx
	for i := range p.boxes {
		p.boxes[i].X += dx
	}
}

func (p *Platform) Right() int16 {
	if len(p.boxes) == 0 {
		return p.position.X
	}
	return p.boxes[len(p.boxes)-1].Right()
}

// CheckIntersection resolves contact with the first box the character
// touches. Coming down from above the platform lands on that box;
// any other contact is a knock-out.
func (p *Platform) CheckIntersection(boy *redhatboy.RedHatBoy) {
	hit := boy.BoundingBox()
	for _, box := range p.boxes {
		if !hit.Intersects(box) {
			continue
		}
		if boy.VelocityY() > 0 && boy.Position().Y < p.position.Y {
			boy.LandOn(box.Y)
		} else {
			boy.KnockOut()
		}
		return
	}
}

// Rightmost returns the largest right edge in obstacles, or 0 for none.
func Rightmost(obstacles []Obstacle) int16 {
	if len(obstacles) == 0 {
		return 0
	}
	right := obstacles[0].Right()
	for _, o := range obstacles[1:] {
		right = max(right, o.Right())
	}
	return right
}
