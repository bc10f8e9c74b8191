package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocky/internal/games/blocky"
	"github.com/vovakirdan/tui-blocky/internal/platform/tui"
	"github.com/vovakirdan/tui-blocky/internal/registry"
	"github.com/vovakirdan/tui-blocky/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Blocky with a lineup picker menu",
	Long: `Start Blocky in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a lineup, then pick a
difficulty and board depth. After a match ends, you return to the menu to
play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores and recent matches
  Esc          - Back
  Q            - Quit

Examples:
  blocky menu
  blocky menu --fps 30
  blocky menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Pick difficulty and board depth
		setup, quit, setupErr := tui.RunSetup(menuResult.Title, cfg)
		if setupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
			continue
		}
		if quit {
			break
		}
		if setup == nil {
			continue // Back to menu
		}

		blocky.SetDifficultyPreset(string(setup.Preset))
		blocky.SetOverrides(setup.Depth, 0)

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		log.Info("starting match", "variant", gameID, "preset", setup.Preset, "depth", setup.Depth, "seed", cfg.Seed)

		// Run the game
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
