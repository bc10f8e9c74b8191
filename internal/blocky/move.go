package blocky

import "math/rand"

// MoveKind is one of the five actions a player can apply to a block.
type MoveKind int

const (
	MoveSwapVertical MoveKind = iota
	MoveSwapHorizontal
	MoveRotateClockwise
	MoveRotateCounterClockwise
	MoveSmash
)

// String returns a short name for the move.
func (k MoveKind) String() string {
	switch k {
	case MoveSwapVertical:
		return "swap vertical"
	case MoveSwapHorizontal:
		return "swap horizontal"
	case MoveRotateClockwise:
		return "rotate clockwise"
	case MoveRotateCounterClockwise:
		return "rotate counter-clockwise"
	case MoveSmash:
		return "smash"
	default:
		return "unknown"
	}
}

// Inverse returns the move that undoes k. Smash has no inverse.
func (k MoveKind) Inverse() (MoveKind, bool) {
	switch k {
	case MoveSwapVertical, MoveSwapHorizontal:
		return k, true
	case MoveRotateClockwise:
		return MoveRotateCounterClockwise, true
	case MoveRotateCounterClockwise:
		return MoveRotateClockwise, true
	default:
		return k, false
	}
}

// reversibleMoves are the moves a SmartPlayer may try and undo.
var reversibleMoves = []MoveKind{
	MoveSwapVertical,
	MoveSwapHorizontal,
	MoveRotateClockwise,
	MoveRotateCounterClockwise,
}

// Move is a move kind bound to the block it acts on.
type Move struct {
	Kind   MoveKind
	Target *Block
}

// Apply performs the move. Only a refused smash reports false;
// mutating a leaf is a successful no-op.
func (m Move) Apply(gen *Generator) bool {
	return apply(m.Kind, m.Target, gen)
}

func apply(kind MoveKind, b *Block, gen *Generator) bool {
	switch kind {
	case MoveSwapVertical:
		b.Swap(Vertical)
	case MoveSwapHorizontal:
		b.Swap(Horizontal)
	case MoveRotateClockwise:
		b.Rotate(Clockwise)
	case MoveRotateCounterClockwise:
		b.Rotate(CounterClockwise)
	case MoveSmash:
		return b.Smash(gen)
	default:
		return false
	}
	return true
}

// randomBlock picks a uniformly random point in [0, size]^2 and a random
// level in [0, MaxDepth], and returns the block selected there.
func randomBlock(board *Block, rng *rand.Rand) *Block {
	p := Pt(
		board.Position.X+rng.Intn(board.Size+1),
		board.Position.Y+rng.Intn(board.Size+1),
	)
	level := board.Level + rng.Intn(board.MaxDepth-board.Level+1)
	return board.SelectAt(p, level)
}
