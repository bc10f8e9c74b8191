package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocky/internal/config"
	"github.com/vovakirdan/tui-blocky/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available lineups",
	Long:  `Shows a list of all Blocky lineups and who plays in each.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No lineups available.")
		return
	}

	cfg, err := config.LoadBlocky("")
	if err != nil {
		cfg = config.DefaultBlockyConfig()
	}

	fmt.Println("Available lineups:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Players")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")

	// Print lineups
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, describeLineup(cfg.Lineup(g.ID)))
	}

	fmt.Println()
	fmt.Println("Run 'blocky play <id>' to play a match.")
}

// describeLineup renders a lineup as "human vs smart(2)".
func describeLineup(lineup []config.PlayerConfig) string {
	parts := make([]string, len(lineup))
	for i, p := range lineup {
		parts[i] = p.Kind
		if p.Kind == "smart" {
			parts[i] = fmt.Sprintf("smart(%d)", p.Difficulty)
		}
	}
	return strings.Join(parts, " vs ")
}
