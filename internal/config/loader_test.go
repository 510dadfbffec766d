package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
canvas:
  width: 1024
  height: 768
game:
  collision: walls
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 768 {
		t.Errorf("canvas = %gx%g, want 1024x768", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Game.Collision != CollisionWalls {
		t.Errorf("collision = %q, want walls", cfg.Game.Collision)
	}
	// Unset sections keep their defaults.
	if cfg.Display.TickRate != 60 {
		t.Errorf("tick_rate = %d, want default 60", cfg.Display.TickRate)
	}
	if cfg.Storage.Path != Default().Storage.Path {
		t.Errorf("storage path = %q, want default", cfg.Storage.Path)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero canvas", "canvas:\n  width: 0\n", "canvas"},
		{"negative tick rate", "display:\n  tick_rate: -1\n", "tick_rate"},
		{"zero effect ticks", "display:\n  effect_ticks: 0\n", "effect_ticks"},
		{"unknown collision", "game:\n  collision: psychic\n", "collision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("canvas: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
