package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagRecent      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show game history",
	Long: `Display the best (or most recent) finished games.

Examples:
  simon scores
  simon scores --recent --limit 20
  simon scores --interactive
  simon scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show most recent games instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole game history")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening games database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Game history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var games []storage.GameEntry
	title := "Best Games"
	if flagRecent {
		title = "Recent Games"
		games, err = store.RecentGames(flagLimit)
	} else {
		games, err = store.TopGames(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Simon - %s\n", title)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'simon play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-5s  %-7s  %-6s  %-9s  %s\n", "Rank", "Round", "Cleared", "Speed", "Ended", "Date")
	fmt.Printf("  %-4s  %-5s  %-7s  %-6s  %-9s  %s\n", "----", "-----", "-------", "-----", "-----", "----")

	for i, g := range games {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-7d  %-6s  %-9s  %s\n", i+1, g.FinalRound, g.Completed, fmt.Sprintf("%dms", g.SpeedMs), g.EndReason, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.BestRound, stats.GamesCount, stats.AvgRound)
	}
}
