package redhatboy

// Animation tags, the prefix of every sprite-sheet cell name.
const (
	TagIdle  = "Idle"
	TagRun   = "Run"
	TagSlide = "Slide"
	TagJump  = "Jump"
	TagDead  = "Dead"
)

// State is one of Idle, Running, Sliding, Jumping, Falling or KnockedOut.
// Each state is a distinct type; only the methods valid in a state exist on it.
type State interface {
	Context() Context
	// Tag is the animation the state plays.
	Tag() string
	// FrameCount is the loop length of the animation.
	FrameCount() uint8
	state()
}

// Idle is the initial state: standing at the start line.
type Idle struct{ ctx Context }

// Running is the default moving state.
type Running struct{ ctx Context }

// Sliding lasts one animation loop, then stands back up.
type Sliding struct{ ctx Context }

// Jumping lasts until the character reaches the floor or lands on a platform.
type Jumping struct{ ctx Context }

// Falling plays the knock-out animation once.
type Falling struct{ ctx Context }

// KnockedOut is terminal.
type KnockedOut struct{ ctx Context }

// NewIdle creates a character standing at the start position.
func NewIdle(p *Physics) Idle {
	return Idle{ctx: newContext(p)}
}

func (s Idle) Context() Context       { return s.ctx }
func (s Running) Context() Context    { return s.ctx }
func (s Sliding) Context() Context    { return s.ctx }
func (s Jumping) Context() Context    { return s.ctx }
func (s Falling) Context() Context    { return s.ctx }
func (s KnockedOut) Context() Context { return s.ctx }

func (Idle) Tag() string       { return TagIdle }
func (Running) Tag() string    { return TagRun }
func (Sliding) Tag() string    { return TagSlide }
func (Jumping) Tag() string    { return TagJump }
func (Falling) Tag() string    { return TagDead }
func (KnockedOut) Tag() string { return TagDead }

func (s Idle) FrameCount() uint8       { return s.ctx.physics.Frames.Idle }
func (s Running) FrameCount() uint8    { return s.ctx.physics.Frames.Running }
func (s Sliding) FrameCount() uint8    { return s.ctx.physics.Frames.Sliding }
func (s Jumping) FrameCount() uint8    { return s.ctx.physics.Frames.Jumping }
func (s Falling) FrameCount() uint8    { return s.ctx.physics.Frames.Falling }
func (s KnockedOut) FrameCount() uint8 { return s.ctx.physics.Frames.Falling }

func (Idle) state()       {}
func (Running) state()    {}
func (Sliding) state()    {}
func (Jumping) state()    {}
func (Falling) state()    {}
func (KnockedOut) state() {}

// Idle

// Update loops the idle animation.
func (s Idle) Update() Idle {
	s.ctx, _ = s.ctx.step(s.FrameCount())
	return s
}

// Run starts running.
func (s Idle) Run() Running {
	return Running{ctx: s.ctx.ResetFrame().RunRight()}
}

// Running

// Update loops the run animation.
func (s Running) Update() Running {
	s.ctx, _ = s.ctx.step(s.FrameCount())
	return s
}

// Jump launches the character upward.
func (s Running) Jump() Jumping {
	return Jumping{ctx: s.ctx.ResetFrame().SetVerticalVelocity(s.ctx.physics.JumpSpeed)}
}

// Slide starts a slide.
func (s Running) Slide() Sliding {
	return Sliding{ctx: s.ctx.ResetFrame()}
}

// KnockOut stops the character and starts falling.
func (s Running) KnockOut() Falling {
	return Falling{ctx: s.ctx.ResetFrame().Stop()}
}

// LandOn keeps running on top of a surface at y.
func (s Running) LandOn(y int16) Running {
	s.ctx = s.ctx.SetOn(y)
	return s
}

// Sliding

// Update advances the slide and stands up once the animation completes.
// The result is Sliding or Running.
func (s Sliding) Update() State {
	ctx, completed := s.ctx.step(s.FrameCount())
	s.ctx = ctx
	if completed {
		return s.Stand()
	}
	return s
}

// Stand ends the slide.
func (s Sliding) Stand() Running {
	return Running{ctx: s.ctx.ResetFrame()}
}

// KnockOut stops the character and starts falling.
func (s Sliding) KnockOut() Falling {
	return Falling{ctx: s.ctx.ResetFrame().Stop()}
}

// LandOn keeps sliding on top of a surface at y.
func (s Sliding) LandOn(y int16) Sliding {
	s.ctx = s.ctx.SetOn(y)
	return s
}

// Jumping

// Update applies the jump arc and lands on the floor once it is reached.
// The result is Jumping or Running.
func (s Jumping) Update() State {
	s.ctx, _ = s.ctx.step(s.FrameCount())
	if s.ctx.onFloor() {
		return Running{ctx: s.ctx.ResetFrame()}
	}
	return s
}

// KnockOut stops the character and starts falling.
func (s Jumping) KnockOut() Falling {
	return Falling{ctx: s.ctx.ResetFrame().Stop()}
}

// LandOn ends the jump on top of a surface at y.
func (s Jumping) LandOn(y int16) Running {
	return Running{ctx: s.ctx.ResetFrame().SetOn(y)}
}

// Falling

// Update plays the fall once; when the animation completes the character
// is knocked out on its last frame. The result is Falling or KnockedOut.
func (s Falling) Update() State {
	ctx, completed := s.ctx.step(s.FrameCount())
	if completed {
		ctx.Frame = s.FrameCount() - 1
		return KnockedOut{ctx: ctx}
	}
	s.ctx = ctx
	return s
}

// KnockedOut

// Update does nothing; a knocked-out character stays down.
func (s KnockedOut) Update() KnockedOut {
	return s
}
