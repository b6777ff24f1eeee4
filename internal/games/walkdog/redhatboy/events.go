package redhatboy

// Event is something that can happen to a character.
type Event interface {
	event()
}

// Run starts running from Idle.
type Run struct{}

// Jump launches a running character.
type Jump struct{}

// Slide starts a slide from Running.
type Slide struct{}

// KnockOut ends the run after a collision.
type KnockOut struct{}

// LandOn places the character on a surface whose top is at Y.
type LandOn struct{ Y int16 }

// Update advances the state by one tick.
type Update struct{}

func (Run) event()      {}
func (Jump) event()     {}
func (Slide) event()    {}
func (KnockOut) event() {}
func (LandOn) event()   {}
func (Update) event()   {}

// Transition applies e to s. An event that does not apply to the current
// state leaves it unchanged.
func Transition(s State, e Event) State {
	switch s := s.(type) {
	case Idle:
		switch e.(type) {
		case Run:
			return s.Run()
		case Update:
			return s.Update()
		}
	case Running:
		switch e := e.(type) {
		case Jump:
			return s.Jump()
		case Slide:
			return s.Slide()
		case KnockOut:
			return s.KnockOut()
		case LandOn:
			return s.LandOn(e.Y)
		case Update:
			return s.Update()
		}
	case Sliding:
		switch e := e.(type) {
		case KnockOut:
			return s.KnockOut()
		case LandOn:
			return s.LandOn(e.Y)
		case Update:
			return s.Update()
		}
	case Jumping:
		switch e := e.(type) {
		case KnockOut:
			return s.KnockOut()
		case LandOn:
			return s.LandOn(e.Y)
		case Update:
			return s.Update()
		}
	case Falling:
		if _, ok := e.(Update); ok {
			return s.Update()
		}
	case KnockedOut:
		if _, ok := e.(Update); ok {
			return s.Update()
		}
	}
	return s
}
