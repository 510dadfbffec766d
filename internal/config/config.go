// Package config provides YAML-based configuration loading for the
// wirerun platform.
package config

// Config contains all tunable platform settings. Gameplay parameters tied
// to difficulty tiers are a fixed contract and deliberately not part of
// the config surface.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Display DisplayConfig `yaml:"display"`
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
}

// CanvasConfig defines the logical simulation space the level generator
// works in, independent of the terminal size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DisplayConfig defines timing parameters for the frame loop.
type DisplayConfig struct {
	TickRate    int `yaml:"tick_rate"`    // Simulation ticks per second
	EffectTicks int `yaml:"effect_ticks"` // Length of the terminal effect window
}

// GameConfig defines run defaults.
type GameConfig struct {
	Difficulty string `yaml:"difficulty"` // Default tier for `wirerun play`
	Collision  string `yaml:"collision"`  // "corridor" or "walls"
}

// StorageConfig defines where the score database lives.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite file path, ~ expands to the home directory
}

// Collision policy names accepted by GameConfig.Collision.
const (
	CollisionCorridor = "corridor"
	CollisionWalls    = "walls"
)
