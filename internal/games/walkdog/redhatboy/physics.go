package redhatboy

import "github.com/vovakirdan/walk-the-dog/internal/config"

// Frames holds the loop length, in ticks, of each animated state.
type Frames struct {
	Idle    uint8
	Running uint8
	Sliding uint8
	Jumping uint8
	Falling uint8
}

// Physics is the read-only tuning shared by every state of a character.
type Physics struct {
	Floor            int16
	PlayerHeight     int16
	StartX           int16
	RunningSpeed     int16
	JumpSpeed        int16
	Gravity          int16
	TerminalVelocity int16
	TicksPerFrame    uint8
	Frames           Frames
	HitBox           config.InsetConfig
}

// NewPhysics extracts the character tuning from a validated config.
func NewPhysics(cfg config.RunnerConfig) *Physics {
	return &Physics{
		Floor:            int16(cfg.Canvas.Floor),
		PlayerHeight:     int16(cfg.Canvas.PlayerHeight()),
		StartX:           int16(cfg.Player.StartX),
		RunningSpeed:     int16(cfg.Physics.RunningSpeed),
		JumpSpeed:        int16(cfg.Physics.JumpSpeed),
		Gravity:          int16(cfg.Physics.Gravity),
		TerminalVelocity: int16(cfg.Physics.TerminalVelocity),
		TicksPerFrame:    uint8(cfg.Animation.TicksPerFrame),
		Frames: Frames{
			Idle:    uint8(cfg.Animation.Idle),
			Running: uint8(cfg.Animation.Running),
			Sliding: uint8(cfg.Animation.Sliding),
			Jumping: uint8(cfg.Animation.Jumping),
			Falling: uint8(cfg.Animation.Falling),
		},
		HitBox: cfg.Player.HitBox,
	}
}

// DefaultPhysics returns the tuning of the built-in config.
func DefaultPhysics() *Physics {
	return NewPhysics(config.DefaultRunnerConfig())
}
