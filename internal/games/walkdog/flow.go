package walkdog

import (
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
)

// FlowState is Ready, Walking or GameOver. Every state owns the world it
// draws, so drawing needs no knowledge of the state.
type FlowState interface {
	Walk() *Walk
	// Update runs one tick and returns the next state.
	Update(keys *core.KeyState, ui engine.RestartUI) FlowState
	// Name is a short label for logs and status lines.
	Name() string
	flowState()
}

// Ready waits at the start line for the run key.
type Ready struct{ walk *Walk }

// Walking runs the world simulation.
type Walking struct{ walk *Walk }

// GameOver freezes the world until the restart button is clicked.
type GameOver struct {
	walk    *Walk
	newGame <-chan struct{}
}

// NewReady starts the flow on a world.
func NewReady(w *Walk) Ready {
	return Ready{walk: w}
}

func (s Ready) Walk() *Walk    { return s.walk }
func (s Walking) Walk() *Walk  { return s.walk }
func (s GameOver) Walk() *Walk { return s.walk }

func (Ready) Name() string    { return "ready" }
func (Walking) Name() string  { return "walking" }
func (GameOver) Name() string { return "game over" }

func (Ready) flowState()    {}
func (Walking) flowState()  {}
func (GameOver) flowState() {}

// Update animates the idle character and starts the run on ArrowRight.
func (s Ready) Update(keys *core.KeyState, _ engine.RestartUI) FlowState {
	s.walk.boy.Update()
	if keys.IsPressed(core.KeyArrowRight) {
		s.walk.boy.RunRight()
		return Walking(s)
	}
	return s
}

// Update applies jump and slide input and advances the world. When the
// character ends up knocked out the restart button is shown.
func (s Walking) Update(keys *core.KeyState, ui engine.RestartUI) FlowState {
	if keys.IsPressed(core.KeySpace) {
		s.walk.boy.Jump()
	}
	if keys.IsPressed(core.KeyArrowDown) {
		s.walk.boy.Slide()
	}

	s.walk.Update()

	if s.walk.boy.KnockedOut() {
		return GameOver{walk: s.walk, newGame: ui.ShowRestart()}
	}
	return s
}

// Update polls the restart button without blocking and, once it is
// clicked, hides it and returns to Ready with a fresh world.
func (s GameOver) Update(_ *core.KeyState, ui engine.RestartUI) FlowState {
	if !engine.Poll(s.newGame) {
		return s
	}
	ui.HideRestart()
	return NewReady(s.walk.Reset())
}
