// wirerun is a terminal game: steer a character along a procedurally
// generated wire corridor from start to goal without touching the walls.
//
// Usage:
//
//	wirerun play [difficulty]   - Play a run directly
//	wirerun menu                - Interactive difficulty picker
//	wirerun serve               - Start SSH server for remote play
//	wirerun scores <difficulty> - Show best times for a difficulty
//	wirerun difficulties        - List difficulty tiers
//	wirerun config              - Print the default configuration
//
// Global flags:
//
//	--fps <rate>      - Override tick rate
//	--seed <value>    - Set RNG seed for reproducible levels
//	--db <path>       - Set database path (default: ~/.wirerun/scores.db)
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vbelov/wirerun/internal/config"
	"github.com/vbelov/wirerun/internal/core"
	"github.com/vbelov/wirerun/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wirerun",
	Short: "Wire Run - Steer the wire in your terminal",
	Long: `Wire Run is a terminal game about a steady hand: guide a character
along a randomly generated curved corridor from the left edge to the
goal on the right. Touch the boundary and the run is over; reach the
goal and your time goes on the leaderboard.

Available commands:
  play          - Play a run at a chosen difficulty
  menu          - Interactive difficulty picker
  serve         - Start SSH server for remote play
  scores        - View best times
  difficulties  - List difficulty tiers
  config        - Print the default configuration

Examples:
  wirerun play
  wirerun play hard
  wirerun menu
  wirerun serve --ssh :2222
  wirerun scores medium`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the platform config, honoring the --config flag.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// dbPath returns the database path, with the --db flag taking precedence
// over the config file.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}

// runtimeConfig builds the per-run runtime config from the platform
// config, global flag overrides, and the current terminal size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	tickRate := cfg.Display.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	return core.RuntimeConfig{
		CanvasW:  cfg.Canvas.Width,
		CanvasH:  cfg.Canvas.Height,
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}

// newGame builds a game with the config's effect window and collision
// policy applied.
func newGame(cfg config.Config, d game.Difficulty) *game.Game {
	g := game.New(d)
	g.SetEffectTicks(cfg.Display.EffectTicks)
	if cfg.Game.Collision == config.CollisionWalls {
		g.SetTester(func() game.Tester { return game.NewWallTester() })
	}
	return g
}
