// blocky is a terminal version of Blocky: players take turns rotating,
// swapping and smashing the blocks of a quadtree board to build up the
// most of their secret colour.
//
// Usage:
//
//	blocky list              - List available lineups
//	blocky play <variant>    - Play a match
//	blocky menu              - Start menu to pick lineups interactively
//	blocky serve             - Start SSH server for remote play
//	blocky scores <variant>  - Show high scores or recent matches
//	blocky board             - Print a generated board and its scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible matches
//	--db <path>           - Set database path (default: ~/.blocky/scores.db)
//	--log-file <path>     - Write logs to a rotated file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-blocky/internal/games/blocky"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	err := rootCmd.Execute()
	closeLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocky",
	Short: "Blocky - a quadtree colour game in your terminal",
	Long: `Blocky is a turn-based game played on a recursively subdivided
square board. Each player secretly targets one colour and tries to build
the largest blob of it, or to cover the most of the board's outer edge.

Available commands:
  list     - Show all available lineups
  play     - Play a specific lineup directly
  menu     - Interactive lineup picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent matches
  board    - Print a generated board with its goal scores

Examples:
  blocky list
  blocky play blocky
  blocky play blocky_watch --depth 3 --rounds 10
  blocky menu
  blocky serve --ssh :2222
  blocky board --depth 3 --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd.Name() == serveCmd.Name())
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocky/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}
