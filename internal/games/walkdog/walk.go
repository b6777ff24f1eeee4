package walkdog

import (
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog/redhatboy"
)

// WorldRules controls how the course is generated and drawn.
type WorldRules struct {
	Canvas          core.Rect
	TimelineMinimum int16
	ObstacleBuffer  int16
	StartOffset     int16
	Debug           bool
}

// Walk is the world: the character, two tiling backgrounds, the live
// obstacles and the timeline, the x-coordinate up to which the course has
// been generated.
type Walk struct {
	boy         *redhatboy.RedHatBoy
	backgrounds [2]engine.Sprite
	obstacles   []Obstacle
	generator   *Generator
	timeline    int16
	rules       WorldRules
}

// NewWalk creates a world with the starting segment and two background
// tiles laid side by side.
func NewWalk(boy *redhatboy.RedHatBoy, background engine.Image, generator *Generator, rules WorldRules) *Walk {
	w := &Walk{
		boy: boy,
		backgrounds: [2]engine.Sprite{
			engine.NewSprite(background, core.Point{}),
			engine.NewSprite(background, core.Point{X: int16(background.Width())}),
		},
		generator: generator,
		rules:     rules,
	}
	w.obstacles = generator.Start(rules.StartOffset)
	w.timeline = Rightmost(w.obstacles)
	return w
}

// Reset returns a fresh world: an idle character on the same assets, the
// starting segment regenerated and the backgrounds kept as they are.
func (w *Walk) Reset() *Walk {
	fresh := &Walk{
		boy:         w.boy.Reset(),
		backgrounds: w.backgrounds,
		generator:   w.generator,
		rules:       w.rules,
	}
	fresh.obstacles = fresh.generator.Start(fresh.rules.StartOffset)
	fresh.timeline = Rightmost(fresh.obstacles)
	return fresh
}

// Boy returns the character.
func (w *Walk) Boy() *redhatboy.RedHatBoy {
	return w.boy
}

// Obstacles returns the live obstacles in generation order.
func (w *Walk) Obstacles() []Obstacle {
	return w.obstacles
}

// Timeline returns the generation watermark.
func (w *Walk) Timeline() int16 {
	return w.timeline
}

// Backgrounds returns the two background tiles.
func (w *Walk) Backgrounds() [2]engine.Sprite {
	return w.backgrounds
}

// Velocity is the world's scroll speed: the character runs right by
// moving everything else left.
func (w *Walk) Velocity() int16 {
	return -w.boy.WalkingSpeed()
}

// Update advances the world one tick. Input has already been applied to
// the character.
func (w *Walk) Update() {
	w.boy.Update()

	velocity := w.Velocity()
	first, second := &w.backgrounds[0], &w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	live := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() > 0 {
			live = append(live, o)
		}
	}
	clear(w.obstacles[len(live):])
	w.obstacles = live

	for _, o := range w.obstacles {
		o.MoveHorizontally(velocity)
		o.CheckIntersection(w.boy)
	}

	if w.timeline < w.rules.TimelineMinimum {
		w.generateNextSegment()
	} else {
		w.timeline += velocity
	}
}

func (w *Walk) generateNextSegment() {
	next := w.generator.Next(w.timeline + w.rules.ObstacleBuffer)
	w.timeline = Rightmost(next)
	w.obstacles = append(w.obstacles, next...)
}

// Draw renders backgrounds, then the character, then the obstacles.
func (w *Walk) Draw(r engine.Renderer) {
	r.Clear(w.rules.Canvas)
	for _, bg := range w.backgrounds {
		bg.Draw(r)
	}
	w.boy.Draw(r, w.rules.Debug)
	for _, o := range w.obstacles {
		o.Draw(r, w.rules.Debug)
	}
}
