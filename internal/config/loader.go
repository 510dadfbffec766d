package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the platform configuration.
// Search order: customPath -> ~/.wirerun/configs/wirerun.yaml -> ./configs/wirerun.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first; an explicit path that fails is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wirerun.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/wirerun.yaml"); err == nil {
		if cfg, err := parse(data, "configs/wirerun.yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse unmarshals a config on top of the built-in defaults so partial
// override files stay valid.
func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// validate rejects values the platform cannot run with.
func validate(cfg Config) error {
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %gx%g", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Display.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", cfg.Display.TickRate)
	}
	if cfg.Display.EffectTicks < 1 {
		return fmt.Errorf("effect_ticks must be at least 1, got %d", cfg.Display.EffectTicks)
	}
	if cfg.Game.Collision != CollisionCorridor && cfg.Game.Collision != CollisionWalls {
		return fmt.Errorf("collision must be %q or %q, got %q", CollisionCorridor, CollisionWalls, cfg.Game.Collision)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wirerun", "configs", filename)
}
