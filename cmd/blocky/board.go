package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	blk "github.com/vovakirdan/tui-blocky/internal/blocky"
	"github.com/vovakirdan/tui-blocky/internal/config"
)

var (
	flagBoardDepth int
	flagBoardSize  int
	flagBoardGoal  string
	flagVerbose    bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a generated board and its goal scores",
	Long: `Generate a random board and print its block tree, the flattened grid
(one palette initial per unit cell, rows top to bottom) and the score every
palette colour would get for each goal.

Examples:
  blocky board
  blocky board --depth 3 --seed 42
  blocky board --goal perimeter --verbose`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().IntVar(&flagBoardDepth, "depth", 0, "Board max depth 1-6 (0 = from config)")
	boardCmd.Flags().IntVar(&flagBoardSize, "size", 0, "Board side in pixels (0 = 4 per unit cell)")
	boardCmd.Flags().StringVar(&flagBoardGoal, "goal", "", "Only score this goal: blob or perimeter")
	boardCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Include highlight and depth details in the tree")
}

func runBoard(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadBlocky("")
	if err != nil {
		cfg = config.DefaultBlockyConfig()
	}

	depth := cfg.Board.MaxDepth
	if flagBoardDepth != 0 {
		depth = flagBoardDepth
	}
	if depth < config.MinDepth || depth > config.MaxDepth {
		fmt.Fprintf(os.Stderr, "Error: depth must be between %d and %d\n", config.MinDepth, config.MaxDepth)
		os.Exit(1)
	}

	size := flagBoardSize
	if size == 0 {
		size = (1 << depth) * 4
	}

	kinds := []blk.GoalKind{blk.GoalBlob, blk.GoalPerimeter}
	if flagBoardGoal != "" {
		kind, err := blk.ParseGoalKind(flagBoardGoal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kinds = []blk.GoalKind{kind}
	}

	palette, err := cfg.BlockyPalette()
	if err != nil {
		palette = blk.DefaultPalette()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := blk.NewGenerator(rand.New(rand.NewSource(seed)), palette).WithDecay(cfg.Board.SubdivideDecay)
	board := gen.Board(depth, size)

	fmt.Printf("Seed %d, depth %d, size %d\n\n", seed, depth, size)
	if err := board.Dump(os.Stdout, palette, flagVerbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(board.Flatten().String(palette))
	fmt.Println()

	writeGoalScores(os.Stdout, board, palette, kinds)
}

// writeGoalScores prints one row per palette colour with the score that
// colour would get under each goal kind.
func writeGoalScores(w io.Writer, board *blk.Block, palette blk.Palette, kinds []blk.GoalKind) {
	fmt.Fprintf(w, "  %-18s", "Colour")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-10s", k)
	}
	fmt.Fprintln(w)
	for _, entry := range palette {
		fmt.Fprintf(w, "  %-18s", entry.Name)
		for _, k := range kinds {
			fmt.Fprintf(w, "  %-10d", blk.NewGoal(k, entry.Color).Score(board))
		}
		fmt.Fprintln(w)
	}
}
