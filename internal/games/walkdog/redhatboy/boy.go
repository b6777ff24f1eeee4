// Package redhatboy implements the player character: a typestate machine
// over six states sharing one physical Context, plus the sprite drawing
// and hit box built on top of it.
package redhatboy

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
)

// RedHatBoy owns the current state and the assets needed to draw it.
type RedHatBoy struct {
	state     State
	sheet     engine.Sheet
	image     engine.Image
	audio     engine.Audio
	jumpSound engine.Sound
	logger    *log.Logger
}

// New creates an idle character at the start position. logger may be nil.
func New(p *Physics, sheet engine.Sheet, image engine.Image, audio engine.Audio, jumpSound engine.Sound, logger *log.Logger) *RedHatBoy {
	if audio == nil {
		audio = engine.NopAudio{}
	}
	return &RedHatBoy{
		state:     NewIdle(p),
		sheet:     sheet,
		image:     image,
		audio:     audio,
		jumpSound: jumpSound,
		logger:    logger,
	}
}

// Reset returns a fresh idle character sharing this one's assets and audio.
func (b *RedHatBoy) Reset() *RedHatBoy {
	return New(b.state.Context().physics, b.sheet, b.image, b.audio, b.jumpSound, b.logger)
}

// State returns the current state.
func (b *RedHatBoy) State() State {
	return b.state
}

func (b *RedHatBoy) transition(e Event) {
	b.state = Transition(b.state, e)
}

// Update advances one tick.
func (b *RedHatBoy) Update() { b.transition(Update{}) }

// RunRight starts running from Idle.
func (b *RedHatBoy) RunRight() { b.transition(Run{}) }

// Slide starts a slide while running.
func (b *RedHatBoy) Slide() { b.transition(Slide{}) }

// KnockOut starts the fall.
func (b *RedHatBoy) KnockOut() { b.transition(KnockOut{}) }

// LandOn stands the character on a surface whose top is at y.
func (b *RedHatBoy) LandOn(y int16) { b.transition(LandOn{Y: y}) }

// Jump launches a running character and plays the jump sound. A sound
// that fails to play is logged and otherwise ignored.
func (b *RedHatBoy) Jump() {
	_, wasRunning := b.state.(Running)
	b.transition(Jump{})
	if _, jumping := b.state.(Jumping); !wasRunning || !jumping || b.jumpSound == nil {
		return
	}
	if err := b.audio.PlaySound(b.jumpSound); err != nil && b.logger != nil {
		b.logger.Warn("jump sound failed", "sound", b.jumpSound.Name(), "err", err)
	}
}

// KnockedOut reports whether the character has finished falling.
func (b *RedHatBoy) KnockedOut() bool {
	_, ok := b.state.(KnockedOut)
	return ok
}

// Position returns the character's reference point: the top-left corner
// of its logical sprite area.
func (b *RedHatBoy) Position() core.Point {
	return b.state.Context().Position
}

// VelocityY returns the vertical velocity. Positive is downward.
func (b *RedHatBoy) VelocityY() int16 {
	return b.state.Context().Velocity.Y
}

// WalkingSpeed returns the horizontal speed the world scrolls at.
func (b *RedHatBoy) WalkingSpeed() int16 {
	return b.state.Context().Velocity.X
}

// FrameName returns the sprite-sheet cell for the current animation frame.
func (b *RedHatBoy) FrameName() string {
	ctx := b.state.Context()
	return FrameName(b.state.Tag(), ctx.Frame, ctx.physics.TicksPerFrame)
}

// FrameName formats a cell name, e.g. "Run (3).png" for frame 7 at three
// ticks per cell.
func FrameName(tag string, frame, ticksPerFrame uint8) string {
	return fmt.Sprintf("%s (%d).png", tag, int(frame)/int(ticksPerFrame)+1)
}

// FrameNames lists every cell name any state can ask for.
func FrameNames(p *Physics) []string {
	anims := []struct {
		tag    string
		frames uint8
	}{
		{TagIdle, p.Frames.Idle},
		{TagRun, p.Frames.Running},
		{TagSlide, p.Frames.Sliding},
		{TagJump, p.Frames.Jumping},
		{TagDead, p.Frames.Falling},
	}

	var names []string
	seen := make(map[string]bool)
	for _, a := range anims {
		for f := 0; f < int(a.frames); f++ {
			name := FrameName(a.tag, uint8(f), p.TicksPerFrame)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// currentCell returns the sheet cell for the current frame. The sheet is
// validated when the game loads, so a missing cell is a programming error.
func (b *RedHatBoy) currentCell() engine.Cell {
	name := b.FrameName()
	cell, ok := b.sheet.Cell(name)
	if !ok {
		panic(fmt.Sprintf("redhatboy: sprite sheet has no cell %q", name))
	}
	return cell
}

// DestinationBox is where the current frame is drawn on the canvas.
func (b *RedHatBoy) DestinationBox() core.Rect {
	cell := b.currentCell()
	pos := b.Position()
	return core.NewRect(
		pos.X+cell.SpriteSourceSize.X,
		pos.Y+cell.SpriteSourceSize.Y,
		cell.Frame.W,
		cell.Frame.H,
	)
}

// BoundingBox is the hit box: the destination box shrunk by the insets.
func (b *RedHatBoy) BoundingBox() core.Rect {
	inset := b.state.Context().physics.HitBox
	box := b.DestinationBox()
	return core.NewRect(
		box.X+int16(inset.X),
		box.Y+int16(inset.Y),
		box.W-int16(inset.Width),
		box.H-int16(inset.Height),
	)
}

// Draw renders the current frame, and the hit box when debug is set.
func (b *RedHatBoy) Draw(r engine.Renderer, debug bool) {
	cell := b.currentCell()
	r.DrawImage(b.image, cell.Frame.Rect(), b.DestinationBox())
	if debug {
		r.DrawRect(b.BoundingBox())
	}
}
