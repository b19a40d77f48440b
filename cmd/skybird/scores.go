package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybird/internal/registry"
	"github.com/vovakirdan/skybird/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a mode, or a summary of every mode.

Examples:
  skybird scores
  skybird scores skybird_classic
  skybird scores skybird --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all runs of the given mode")
}

func runScores(_ *cobra.Command, args []string) {
	logger, closeLog := mustLogger(false)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skybird list' to see available modes.")
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "mode", gameID)
		return
	}

	printTop(store, gameID)
}

func printTop(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skybird play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Coins", "Frames", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-7d  %s\n",
			i+1, r.Score, r.CoinScore, r.Frames, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Coins: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalCoins)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-18s  %-5s  %-5s  %-7s  %s\n", "Mode", "Best", "Runs", "Average", "Last played")
	fmt.Printf("  %-18s  %-5s  %-5s  %-7s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-18s  %-5s  %-5s  %-7s  %s\n", g.ID, "-", "0", "-", "never")
			continue
		}
		fmt.Printf("  %-18s  %-5d  %-5d  %-7.1f  %s\n",
			g.ID, st.HighScore, st.RunsCount, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
