// Package config provides YAML-based tuning for the runner: canvas geometry,
// physics constants, animation lengths, world generation and loop timing.
package config

import (
	"errors"
	"fmt"
	"math"
)

// RunnerConfig contains all tuning for the game.
type RunnerConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Animation AnimationConfig `yaml:"animation"`
	Player    PlayerConfig    `yaml:"player"`
	World     WorldConfig     `yaml:"world"`
	Assets    AssetsConfig    `yaml:"assets"`
	Loop      LoopConfig      `yaml:"loop"`
	Debug     DebugConfig     `yaml:"debug"`
}

// CanvasConfig defines the logical drawing surface in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Floor  int `yaml:"floor"` // Highest y the character's top edge may reach downward
}

// PhysicsConfig defines per-tick character physics. Negative y is up.
type PhysicsConfig struct {
	RunningSpeed     int `yaml:"running_speed"`
	JumpSpeed        int `yaml:"jump_speed"`
	Gravity          int `yaml:"gravity"`
	TerminalVelocity int `yaml:"terminal_velocity"`
}

// AnimationConfig defines the loop length, in ticks, of every character state.
type AnimationConfig struct {
	Idle          int `yaml:"idle"`
	Running       int `yaml:"running"`
	Sliding       int `yaml:"sliding"`
	Jumping       int `yaml:"jumping"`
	Falling       int `yaml:"falling"`
	TicksPerFrame int `yaml:"ticks_per_frame"` // Ticks each sprite cell stays on screen
}

// PlayerConfig defines the character's start position and hit box.
type PlayerConfig struct {
	StartX int         `yaml:"start_x"`
	HitBox InsetConfig `yaml:"hit_box"`
}

// InsetConfig shrinks a sprite's destination box into its hit box.
type InsetConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig defines obstacle generation and scrolling.
type WorldConfig struct {
	TimelineMinimum int  `yaml:"timeline_minimum"`
	ObstacleBuffer  int  `yaml:"obstacle_buffer"`
	StartOffset     int  `yaml:"start_offset"`
	StoneY          int  `yaml:"stone_y"`
	PlatformY       int  `yaml:"platform_y"`
	PlatformOffset  int  `yaml:"platform_offset"`
	SolidBarriers   bool `yaml:"solid_barriers"`
}

// AssetsConfig names every file the game loads at start-up.
type AssetsConfig struct {
	CharacterSheet string `yaml:"character_sheet"`
	CharacterImage string `yaml:"character_image"`
	Background     string `yaml:"background"`
	Stone          string `yaml:"stone"`
	TilesSheet     string `yaml:"tiles_sheet"`
	TilesImage     string `yaml:"tiles_image"`
	JumpSound      string `yaml:"jump_sound"`
}

// LoopConfig defines the fixed-timestep scheduler.
type LoopConfig struct {
	TickRate         int `yaml:"tick_rate"`           // Simulation ticks per second
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"` // Backlog cap after a stall
}

// DebugConfig toggles developer overlays.
type DebugConfig struct {
	BoundingBoxes bool `yaml:"bounding_boxes"`
	FrameRate     bool `yaml:"frame_rate"`
}

// PlayerHeight is the distance from the floor to the bottom of the canvas.
// Landing on a surface at y places the character's top edge at y - PlayerHeight.
func (c CanvasConfig) PlayerHeight() int {
	return c.Height - c.Floor
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate reports the first setting that would break the simulation.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.Floor <= 0 || c.Canvas.Floor >= c.Canvas.Height:
		return fmt.Errorf("%w: floor %d outside canvas height %d", ErrInvalidConfig, c.Canvas.Floor, c.Canvas.Height)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal_velocity %d", ErrInvalidConfig, c.Physics.TerminalVelocity)
	case c.Animation.TicksPerFrame <= 0 || c.Animation.TicksPerFrame > math.MaxUint8:
		return fmt.Errorf("%w: ticks_per_frame %d", ErrInvalidConfig, c.Animation.TicksPerFrame)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidConfig, c.Loop.TickRate)
	case c.Loop.MaxTicksPerFrame <= 0:
		return fmt.Errorf("%w: max_ticks_per_frame %d", ErrInvalidConfig, c.Loop.MaxTicksPerFrame)
	}

	frames := map[string]int{
		"idle":    c.Animation.Idle,
		"running": c.Animation.Running,
		"sliding": c.Animation.Sliding,
		"jumping": c.Animation.Jumping,
		"falling": c.Animation.Falling,
	}
	for _, name := range []string{"idle", "running", "sliding", "jumping", "falling"} {
		// Frame counters are u8 on the character context.
		if n := frames[name]; n <= 0 || n > 255 {
			return fmt.Errorf("%w: animation.%s frame count %d", ErrInvalidConfig, name, n)
		}
	}
	// Positions and speeds are int16 on the canvas.
	for _, f := range c.int16Fields() {
		if f.value < math.MinInt16 || f.value > math.MaxInt16 {
			return fmt.Errorf("%w: %s %d out of int16 range", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value int
}

func (c RunnerConfig) int16Fields() []namedValue {
	return []namedValue{
		{"canvas.width", c.Canvas.Width},
		{"canvas.height", c.Canvas.Height},
		{"canvas.floor", c.Canvas.Floor},
		{"physics.running_speed", c.Physics.RunningSpeed},
		{"physics.jump_speed", c.Physics.JumpSpeed},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.terminal_velocity", c.Physics.TerminalVelocity},
		{"player.start_x", c.Player.StartX},
		{"player.hit_box.x", c.Player.HitBox.X},
		{"player.hit_box.y", c.Player.HitBox.Y},
		{"player.hit_box.width", c.Player.HitBox.Width},
		{"player.hit_box.height", c.Player.HitBox.Height},
		{"world.timeline_minimum", c.World.TimelineMinimum},
		{"world.obstacle_buffer", c.World.ObstacleBuffer},
		{"world.start_offset", c.World.StartOffset},
		{"world.stone_y", c.World.StoneY},
		{"world.platform_y", c.World.PlatformY},
		{"world.platform_offset", c.World.PlatformOffset},
	}
}
