package redhatboy

import "github.com/vovakirdan/walk-the-dog/internal/core"

// Context is the physical state every character state carries. Methods
// return a changed copy; a Context is never modified in place.
type Context struct {
	Frame    uint8
	Position core.Point
	Velocity core.Point

	physics *Physics
}

func newContext(p *Physics) Context {
	return Context{
		Position: core.Point{X: p.StartX, Y: p.Floor},
		physics:  p,
	}
}

// Physics returns the tuning the context integrates with.
func (c Context) Physics() *Physics {
	return c.physics
}

// step advances one tick: the frame counter wraps at frames, gravity pulls
// velocity down to the terminal velocity and the character falls no lower
// than the floor. The x position never changes; the world scrolls instead.
// completed reports that the frame counter wrapped.
func (c Context) step(frames uint8) (next Context, completed bool) {
	if c.Frame+1 >= frames {
		c.Frame = 0
		completed = true
	} else {
		c.Frame++
	}

	c.Velocity.Y = min(c.Velocity.Y+c.physics.Gravity, c.physics.TerminalVelocity)
	c.Position.Y = min(c.Position.Y+c.Velocity.Y, c.physics.Floor)
	return c, completed
}

// ResetFrame restarts the animation.
func (c Context) ResetFrame() Context {
	c.Frame = 0
	return c
}

// RunRight adds one running-speed increment. Repeated calls compound.
func (c Context) RunRight() Context {
	c.Velocity.X += c.physics.RunningSpeed
	return c
}

// SetVerticalVelocity replaces the vertical velocity.
func (c Context) SetVerticalVelocity(y int16) Context {
	c.Velocity.Y = y
	return c
}

// Stop zeroes both velocity components.
func (c Context) Stop() Context {
	c.Velocity = core.Point{}
	return c
}

// SetOn places the character standing on a surface whose top is at y.
func (c Context) SetOn(y int16) Context {
	c.Position.Y = y - c.physics.PlayerHeight
	return c
}

// onFloor reports whether the character has reached the floor.
func (c Context) onFloor() bool {
	return c.Position.Y >= c.physics.Floor
}
