package config

import (
	_ "embed"
)

//go:embed defaults/wirerun.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Display: DisplayConfig{
			TickRate:    60,
			EffectTicks: 45,
		},
		Game: GameConfig{
			Difficulty: "medium",
			Collision:  CollisionCorridor,
		},
		Storage: StorageConfig{
			Path: "~/.wirerun/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `wirerun config`
// to print a starting point for user overrides.
func DefaultYAML() []byte {
	return defaultYAML
}
