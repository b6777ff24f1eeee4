package config

import "fmt"

// DifficultyPreset represents a named speed level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in ascending order of speed.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// RunningSpeedForPreset returns the per-run speed increment for a preset.
func RunningSpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 4
	}
}

// ParsePreset validates a preset name. The empty string means "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (use easy, normal or hard)", name)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only the running speed changes; the world scrolls at that speed.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Physics.RunningSpeed = RunningSpeedForPreset(preset)
}
