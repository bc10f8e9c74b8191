package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocky/internal/registry"
	"github.com/vovakirdan/tui-blocky/internal/storage"
)

var (
	flagMatches bool
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores or recent matches",
	Long: `Display the top 10 high scores for the specified lineup, or its
recent matches with --matches. Without a lineup, prints a summary of every
lineup that has been played.

Examples:
  blocky scores
  blocky scores blocky
  blocky scores blocky_watch --matches
  blocky scores blocky --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagMatches, "matches", false, "Show recent matches instead of high scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and matches for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocky list' to see available lineups.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores and matches for %s.\n", title)
	case flagMatches:
		printMatches(store, gameID, title)
	default:
		printHighScores(store, gameID, title)
	}
}

func printHighScores(store *storage.Store, gameID, title string) {
	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blocky play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score and averages
	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Average: %.1f  Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	}
}

func printMatches(store *storage.Store, gameID, title string) {
	matches, err := store.RecentMatches(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Matches - %s\n", title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-10s  %-6s  %s\n", "Date", "Match", "Goal", "Winner", "Scores")
	fmt.Printf("  %-16s  %-8s  %-10s  %-6s  %s\n", "----", "-----", "----", "------", "------")
	for _, m := range matches {
		goal := ""
		scores := make([]string, len(m.Players))
		for i, p := range m.Players {
			goal = p.Goal
			scores[i] = fmt.Sprintf("%s %d: %d (%s)", p.Kind, p.PlayerID, p.Score, p.Color)
		}
		winner := "draw"
		if m.WinnerID != 0 {
			winner = fmt.Sprintf("P%d", m.WinnerID)
		}
		fmt.Printf("  %-16s  %-8s  %-10s  %-6s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.MatchID[:8], goal, winner, strings.Join(scores, ", "))
	}

	// Per-kind summary
	stats, err := store.PlayerKindStats(gameID)
	if err != nil || len(stats) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %s\n", "Kind", "Games", "Wins", "Average", "Best")
	for _, k := range stats {
		fmt.Printf("  %-8s  %-6d  %-6d  %-8.1f  %d\n", k.Kind, k.Games, k.Wins, k.AvgScore, k.Best)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %s\n", "Variant", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-14s  %-6s  %-6s  %-8s  %s\n", "-------", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-14s  %-6d  %-6d  %-8.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
