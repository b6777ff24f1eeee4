package config

import (
	_ "embed"
)

//go:embed defaults/walkdog.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in tuning.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:  600,
			Height: 600,
			Floor:  479,
		},
		Physics: PhysicsConfig{
			RunningSpeed:     4,
			JumpSpeed:        -25,
			Gravity:          1,
			TerminalVelocity: 20,
		},
		Animation: AnimationConfig{
			Idle:          29,
			Running:       23,
			Sliding:       14,
			Jumping:       35,
			Falling:       29,
			TicksPerFrame: 3,
		},
		Player: PlayerConfig{
			StartX: -20,
			HitBox: InsetConfig{X: 18, Y: 14, Width: 28, Height: 14},
		},
		World: WorldConfig{
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
			StartOffset:     0,
			StoneY:          546,
			PlatformY:       420,
			PlatformOffset:  370,
			SolidBarriers:   false,
		},
		Assets: AssetsConfig{
			CharacterSheet: "rhb.json",
			CharacterImage: "rhb.png",
			Background:     "BG.png",
			Stone:          "Stone.png",
			TilesSheet:     "tiles.json",
			TilesImage:     "tiles.png",
			JumpSound:      "SFX_Jump_23.mp3",
		},
		Loop: LoopConfig{
			TickRate:         60,
			MaxTicksPerFrame: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
