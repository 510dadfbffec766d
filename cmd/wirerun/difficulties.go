package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vbelov/wirerun/internal/game"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty tiers",
	Long:  `Difficulties lists the available tiers with their corridor width and speed.`,
	RunE:  runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) error {
	fmt.Println("Available difficulties:")
	fmt.Println()
	fmt.Printf("  %-12s %-16s %s\n", "TIER", "CORRIDOR WIDTH", "SPEED")
	fmt.Printf("  %-12s %-16s %s\n", "----", "--------------", "-----")

	for _, d := range game.Difficulties() {
		setting, err := d.Setting()
		if err != nil {
			continue
		}
		fmt.Printf("  %-12s %-16.0f %.0f\n", d, setting.CorridorWidth, setting.Speed)
	}

	fmt.Println()
	fmt.Println("Play with: wirerun play <tier>")
	return nil
}
