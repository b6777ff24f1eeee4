package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg := RunnerConfig{}
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Canvas.PlayerHeight() != 121 {
		t.Errorf("PlayerHeight() = %d, expected 121", cfg.Canvas.PlayerHeight())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero canvas", func(c *RunnerConfig) { c.Canvas.Width = 0 }},
		{"floor below canvas", func(c *RunnerConfig) { c.Canvas.Floor = c.Canvas.Height }},
		{"negative floor", func(c *RunnerConfig) { c.Canvas.Floor = -1 }},
		{"zero terminal velocity", func(c *RunnerConfig) { c.Physics.TerminalVelocity = 0 }},
		{"zero ticks per frame", func(c *RunnerConfig) { c.Animation.TicksPerFrame = 0 }},
		{"ticks per frame overflow", func(c *RunnerConfig) { c.Animation.TicksPerFrame = 256 }},
		{"canvas wider than int16", func(c *RunnerConfig) { c.Canvas.Width = 40000; c.Canvas.Floor = 479 }},
		{"jump speed below int16", func(c *RunnerConfig) { c.Physics.JumpSpeed = -40000 }},
		{"start offset above int16", func(c *RunnerConfig) { c.World.StartOffset = 32768 }},
		{"hit box inset above int16", func(c *RunnerConfig) { c.Player.HitBox.Width = 1 << 16 }},
		{"zero idle frames", func(c *RunnerConfig) { c.Animation.Idle = 0 }},
		{"falling frames overflow", func(c *RunnerConfig) { c.Animation.Falling = 256 }},
		{"zero tick rate", func(c *RunnerConfig) { c.Loop.TickRate = 0 }},
		{"zero tick cap", func(c *RunnerConfig) { c.Loop.MaxTicksPerFrame = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  running_speed: 7\nworld:\n  solid_barriers: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Physics.RunningSpeed != 7 {
		t.Errorf("RunningSpeed = %d, expected 7", cfg.Physics.RunningSpeed)
	}
	if !cfg.World.SolidBarriers {
		t.Error("SolidBarriers should be overridden to true")
	}
	if cfg.Physics.JumpSpeed != -25 {
		t.Errorf("unset keys should keep defaults, JumpSpeed = %d", cfg.Physics.JumpSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("canvas: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("unparseable custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("loop:\n  tick_rate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name  string
		speed int
	}{
		{"easy", 3},
		{"normal", 4},
		{"hard", 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preset, err := ParsePreset(tc.name)
			if err != nil {
				t.Fatalf("ParsePreset(%q) error: %v", tc.name, err)
			}
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, preset)
			if cfg.Physics.RunningSpeed != tc.speed {
				t.Errorf("RunningSpeed = %d, expected %d", cfg.Physics.RunningSpeed, tc.speed)
			}
			if cfg.Physics.JumpSpeed != DefaultRunnerConfig().Physics.JumpSpeed {
				t.Error("presets should only change the running speed")
			}
		})
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("unknown preset should fail")
	}

	cfg := DefaultRunnerConfig()
	cfg.Physics.RunningSpeed = 9
	ApplyPreset(&cfg, "")
	if cfg.Physics.RunningSpeed != 9 {
		t.Error("empty preset should keep the loaded speed")
	}
}
