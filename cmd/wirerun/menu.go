package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vbelov/wirerun/internal/platform/tui"
	"github.com/vbelov/wirerun/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive difficulty picker",
	Long: `Menu shows the difficulty tiers with your best time for each,
lets you pick one, and starts the run. After a run ends you return
to the menu. Press Tab in the menu to view the leaderboards.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: run results will not be saved: %v\n", err)
	} else {
		defer store.Close()
	}

	rc := runtimeConfig(cfg)
	player := playerName()

	// Loop: menu -> run or scoreboard -> menu, until the user quits.
	for {
		result, err := tui.RunMenu(store, rc)
		if err != nil {
			return fmt.Errorf("menu error: %w", err)
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard error: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		// Fresh seed per run unless pinned with --seed
		runCfg := rc
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(newGame(cfg, result.Difficulty), store, runCfg, player); err != nil {
			return fmt.Errorf("game error: %w", err)
		}
	}
}
