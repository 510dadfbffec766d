package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vbelov/wirerun/internal/game"
	"github.com/vbelov/wirerun/internal/platform/tui"
	"github.com/vbelov/wirerun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a run at a chosen difficulty",
	Long: `Play starts a single run directly, skipping the menu.

The difficulty argument is one of: easy, medium, hard, super-hard.
If omitted, the config file's default difficulty is used.

Examples:
  wirerun play
  wirerun play hard
  wirerun play easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tag := cfg.Game.Difficulty
	if len(args) > 0 {
		tag = args[0]
	}

	difficulty, err := game.ParseDifficulty(tag)
	if err != nil {
		return fmt.Errorf("unknown difficulty %q (valid: %v)", tag, game.Difficulties())
	}

	// Open storage; play without it if unavailable
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: run results will not be saved: %v\n", err)
	} else {
		defer store.Close()
	}

	return tui.Run(newGame(cfg, difficulty), store, runtimeConfig(cfg), playerName())
}

// playerName resolves the local player's name for the leaderboard.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}
