package core

// RuntimeConfig contains configuration passed to frontends at start-up.
// The game itself works in canvas pixels; ScreenW and ScreenH describe the
// surface the frontend presents the canvas on.
type RuntimeConfig struct {
	ScreenW  int   // Presentation width (terminal cells or window pixels)
	ScreenH  int   // Presentation height (terminal cells or window pixels)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic segment selection
	Debug    bool  // Draw bounding boxes and the frame rate
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
