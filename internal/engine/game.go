package engine

import (
	"context"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Game is the entry point a frontend drives.
type Game interface {
	// Initialize loads assets and returns the playable game. Calling it on
	// an already initialized game is an error.
	Initialize(ctx context.Context) (Game, error)
	// Update advances the simulation by one tick.
	Update(keys *core.KeyState)
	// Draw renders the current state. It does not change the simulation.
	Draw(r Renderer)
}
