package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocky/internal/config"
	"github.com/vovakirdan/tui-blocky/internal/core"
	"github.com/vovakirdan/tui-blocky/internal/games/blocky"
	"github.com/vovakirdan/tui-blocky/internal/platform/tui"
	"github.com/vovakirdan/tui-blocky/internal/registry"
	"github.com/vovakirdan/tui-blocky/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDepth      int
	flagRounds     int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a match",
	Long: `Start a match of the specified lineup.

Controls:
  Arrows/mouse  - Move the pointer
  [ / ]         - Select a larger / smaller block
  R / E         - Rotate clockwise / counter-clockwise (or left/right click)
  H / V         - Swap horizontally / vertically
  X             - Smash (split into four random blocks)
  P             - Pause
  N             - New match
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Weak computer opponents, 2 smashes per player
  normal - Computer opponents try 25 moves per turn
  hard   - Computer opponents try 150 moves per turn, 1 smash
  fixed  - Use the config file's difficulties as they are

Examples:
  blocky play blocky
  blocky play blocky --difficulty hard
  blocky play blocky_duel --depth 3 --rounds 8
  blocky play blocky_watch --config ./my-blocky.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom Blocky config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagDepth, "depth", 0, "Board max depth 1-6 (0 = from config)")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Number of rounds (0 = from config)")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocky list' to see available lineups.")
		os.Exit(1)
	}

	// A broken custom config is an error rather than a silent fallback
	if flagConfig != "" {
		if _, err := config.LoadBlocky(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Set config path, difficulty and overrides before creation
	blocky.SetConfigPath(flagConfig)
	blocky.SetDifficultyPreset(flagDifficulty)
	blocky.SetOverrides(flagDepth, flagRounds)

	cfg := terminalConfig()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	log.Info("starting match", "variant", gameID, "seed", cfg.Seed)

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
