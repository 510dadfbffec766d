package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vbelov/wirerun/internal/game"
	"github.com/vbelov/wirerun/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "View best times",
	Long: `Scores prints the leaderboard for a difficulty tier, or a summary
across all tiers when no difficulty is given.

Examples:
  wirerun scores
  wirerun scores medium
  wirerun scores hard --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	difficulty, err := game.ParseDifficulty(args[0])
	if err != nil {
		return fmt.Errorf("unknown difficulty %q (valid: %v)", args[0], game.Difficulties())
	}

	return printLeaderboard(store, difficulty)
}

// printLeaderboard prints the best victory times for one tier.
func printLeaderboard(store *storage.Store, d game.Difficulty) error {
	runs, err := store.BestTimes(d.String(), flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best times - %s\n", d)
	fmt.Println("------------------------------------------------")

	if len(runs) == 0 {
		fmt.Println("No victories recorded yet.")
		return nil
	}

	fmt.Printf("%-6s %-12s %-16s %s\n", "Rank", "Time", "Player", "Date")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("#%-5d %-12s %-16s %s\n",
			i+1, game.FormatMillis(r.DurationMillis), player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

// printSummary prints aggregated stats per tier.
func printSummary(store *storage.Store) error {
	fmt.Println("Run statistics")
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("%-12s %6s %10s %12s %12s\n", "Difficulty", "Runs", "Victories", "Best", "Average")

	for _, d := range game.Difficulties() {
		stats, err := store.Stats(d.String())
		if err != nil {
			return err
		}

		best := "-"
		if stats.BestMillis > 0 {
			best = game.FormatMillis(stats.BestMillis)
		}
		avg := "-"
		if stats.AvgMillis > 0 {
			avg = game.FormatMillis(int64(stats.AvgMillis))
		}

		fmt.Printf("%-12s %6d %10d %12s %12s\n",
			d, stats.RunCount, stats.Victories, best, avg)
	}

	return nil
}
