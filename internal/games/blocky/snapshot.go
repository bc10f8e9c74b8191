package blocky

import (
	blk "github.com/vovakirdan/tui-blocky/internal/blocky"
)

// Snapshot contains the observable state of a match.
// Uses primitive types only so snapshots compare with ==.
type Snapshot struct {
	Tick     int
	Round    int
	Current  int // 1-based player id whose turn it is
	Goal     string
	Grid     string // flattened board, one palette initial per unit cell
	Scores   string // scores joined with " - "
	Pointer  blk.Point
	GameOver bool
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Round:    g.round,
		Current:  g.seats[g.current].player.ID(),
		Goal:     g.goal.String(),
		Grid:     g.board.Flatten().String(g.palette),
		Scores:   g.scoreLine(),
		Pointer:  g.pointer,
		GameOver: g.gameOver,
	}
}
