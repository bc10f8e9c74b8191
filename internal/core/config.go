package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}

// PlayerResult is one player's line in a finished match.
type PlayerResult struct {
	PlayerID int
	Kind     string // human, random or smart
	Goal     string // goal kind
	Color    string // target colour name
	Score    int
}

// MatchResult describes a finished match, ready to be stored.
type MatchResult struct {
	GameID   string
	Rounds   int
	Seed     int64
	WinnerID int // 0 on a draw
	Duration time.Duration
	Players  []PlayerResult
}

// Winner returns the id of the single highest scorer, or 0 on a tie.
func Winner(players []PlayerResult) int {
	best, winner := -1, 0
	for _, p := range players {
		switch {
		case p.Score > best:
			best, winner = p.Score, p.PlayerID
		case p.Score == best:
			winner = 0
		}
	}
	return winner
}
