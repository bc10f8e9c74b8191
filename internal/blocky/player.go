package blocky

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// PlayerKind identifies how a player picks moves.
type PlayerKind int

const (
	KindHuman PlayerKind = iota
	KindRandom
	KindSmart
)

// String returns the config name of the kind.
func (k PlayerKind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindRandom:
		return "random"
	case KindSmart:
		return "smart"
	default:
		return "unknown"
	}
}

// ParsePlayerKind converts "human", "random" or "smart" to a PlayerKind.
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return KindHuman, nil
	case "random":
		return KindRandom, nil
	case "smart":
		return KindSmart, nil
	default:
		return 0, fmt.Errorf("blocky: unknown player kind %q", s)
	}
}

// Player is a participant with a goal.
type Player interface {
	ID() int
	Goal() Goal
	Kind() PlayerKind
}

// Computer is a player that chooses its own moves.
type Computer interface {
	Player
	// ChooseMove picks a move on board without applying it.
	ChooseMove(board *Block, rng *rand.Rand) Move
}

// NewComputer returns a random or smart computer player.
func NewComputer(kind PlayerKind, id int, goal Goal, difficulty int) (Computer, error) {
	switch kind {
	case KindRandom:
		return NewRandomPlayer(id, goal), nil
	case KindSmart:
		return NewSmartPlayer(id, goal, difficulty), nil
	default:
		return nil, fmt.Errorf("blocky: %s is not a computer player", kind)
	}
}

// RandomPlayer picks any of the five moves on a random block. It has no
// smash limit, but smashing the root or a unit cell forfeits its turn.
type RandomPlayer struct {
	id   int
	goal Goal
}

// NewRandomPlayer creates a random player.
func NewRandomPlayer(id int, goal Goal) *RandomPlayer {
	return &RandomPlayer{id: id, goal: goal}
}

func (p *RandomPlayer) ID() int          { return p.id }
func (p *RandomPlayer) Goal() Goal       { return p.goal }
func (p *RandomPlayer) Kind() PlayerKind { return KindRandom }

// ChooseMove picks a random block and a random move kind.
func (p *RandomPlayer) ChooseMove(board *Block, rng *rand.Rand) Move {
	target := randomBlock(board, rng)
	return Move{Kind: MoveKind(rng.Intn(5)), Target: target}
}

// DifficultyMoves is how many candidate moves a SmartPlayer compares at
// each difficulty. Difficulties past the end use the last entry.
var DifficultyMoves = []int{5, 10, 25, 50, 100, 150}

// MovesForDifficulty returns the number of candidates for difficulty d.
func MovesForDifficulty(d int) int {
	if d < 0 {
		d = 0
	}
	if d >= len(DifficultyMoves) {
		return DifficultyMoves[len(DifficultyMoves)-1]
	}
	return DifficultyMoves[d]
}

// SmartPlayer tries a number of random reversible moves, scores each
// with its goal, and keeps the best. It never smashes.
type SmartPlayer struct {
	id         int
	goal       Goal
	difficulty int
	moves      []int
}

// NewSmartPlayer creates a smart player at the given difficulty.
func NewSmartPlayer(id int, goal Goal, difficulty int) *SmartPlayer {
	if difficulty < 0 {
		difficulty = 0
	}
	return &SmartPlayer{id: id, goal: goal, difficulty: difficulty}
}

// WithMoveTable overrides DifficultyMoves for this player.
func (p *SmartPlayer) WithMoveTable(moves []int) *SmartPlayer {
	if len(moves) > 0 {
		p.moves = moves
	}
	return p
}

func (p *SmartPlayer) ID() int          { return p.id }
func (p *SmartPlayer) Goal() Goal       { return p.goal }
func (p *SmartPlayer) Kind() PlayerKind { return KindSmart }

// Difficulty returns the player's difficulty level.
func (p *SmartPlayer) Difficulty() int { return p.difficulty }

// Candidates returns how many moves the player compares per turn.
func (p *SmartPlayer) Candidates() int {
	if p.moves == nil {
		return MovesForDifficulty(p.difficulty)
	}
	if p.difficulty >= len(p.moves) {
		return p.moves[len(p.moves)-1]
	}
	return p.moves[p.difficulty]
}

// ChooseMove evaluates candidate moves by applying, scoring and undoing
// each one. The board is unchanged when it returns. Ties go to the
// earliest candidate.
func (p *SmartPlayer) ChooseMove(board *Block, rng *rand.Rand) Move {
	var best Move
	bestScore := -1
	for i := 0; i < p.Candidates(); i++ {
		kind := reversibleMoves[rng.Intn(len(reversibleMoves))]
		target := randomBlock(board, rng)
		if score := p.evaluate(board, kind, target); score > bestScore {
			best = Move{Kind: kind, Target: target}
			bestScore = score
		}
	}
	return best
}

func (p *SmartPlayer) evaluate(board *Block, kind MoveKind, target *Block) int {
	inverse, _ := kind.Inverse()
	apply(kind, target, nil)
	score := p.goal.Score(board)
	apply(inverse, target, nil)
	return score
}

// Errors describing why a human move was rejected.
var (
	ErrSmashLimit   = errors.New("blocky: no smashes left")
	ErrInvalidSmash = errors.New("blocky: cannot smash the whole board or a unit cell")
)

// MoveResult reports the outcome of a human action.
type MoveResult int

const (
	// MoveNone means the action did not change the board (selection only).
	MoveNone MoveResult = iota
	// MoveApplied means the action was a completed move.
	MoveApplied
	// MoveRejected means the move was not allowed.
	MoveRejected
)

// DefaultMaxSmashes is the number of smashes a human may make per game.
const DefaultMaxSmashes = 1

// HumanPlayer holds the selection state of an interactive player.
type HumanPlayer struct {
	id         int
	goal       Goal
	maxSmashes int
	smashes    int
	level      int
	selected   *Block
}

// NewHumanPlayer creates a human player with the given smash allowance.
func NewHumanPlayer(id int, goal Goal, maxSmashes int) *HumanPlayer {
	if maxSmashes < 0 {
		maxSmashes = 0
	}
	return &HumanPlayer{id: id, goal: goal, maxSmashes: maxSmashes}
}

func (p *HumanPlayer) ID() int          { return p.id }
func (p *HumanPlayer) Goal() Goal       { return p.goal }
func (p *HumanPlayer) Kind() PlayerKind { return KindHuman }

// Smashes returns how many smashes the player has made.
func (p *HumanPlayer) Smashes() int { return p.smashes }

// SmashesLeft returns the remaining smash allowance.
func (p *HumanPlayer) SmashesLeft() int { return p.maxSmashes - p.smashes }

// Level returns the currently requested selection level.
func (p *HumanPlayer) Level() int { return p.level }

// Selected returns the highlighted block, or nil.
func (p *HumanPlayer) Selected() *Block { return p.selected }

// StartTurn resets the selection to the whole board.
func (p *HumanPlayer) StartTurn(board *Block) {
	p.Deselect()
	p.level = board.Level
	p.selected = board
}

// Select highlights the block under pointer at the current level. If the
// tree is shallower there, the level follows the block actually reached.
func (p *HumanPlayer) Select(board *Block, pointer Point) *Block {
	if p.level > board.MaxDepth {
		p.level = board.MaxDepth
	}
	b := board.SelectAt(pointer, p.level)
	if p.selected != nil {
		p.selected.Highlighted = false
	}
	p.selected = b
	b.Highlighted = true
	p.level = b.Level
	return b
}

// LevelUp selects the parent level, unless the selection is the board.
func (p *HumanPlayer) LevelUp() {
	if p.selected != nil && p.selected != p.selected.Root() {
		p.level--
	}
}

// LevelDown selects the child level, if the selection is subdivided.
func (p *HumanPlayer) LevelDown() {
	if p.selected != nil && !p.selected.IsLeaf() {
		p.level++
	}
}

// Deselect clears the highlight.
func (p *HumanPlayer) Deselect() {
	if p.selected != nil {
		p.selected.Highlighted = false
	}
	p.selected = nil
}

// Act applies kind to the selected block. A smash past the allowance or
// on an invalid block is rejected with ErrSmashLimit or ErrInvalidSmash.
func (p *HumanPlayer) Act(kind MoveKind, gen *Generator) (MoveResult, error) {
	if p.selected == nil {
		return MoveNone, nil
	}
	if kind == MoveSmash {
		if p.smashes >= p.maxSmashes {
			return MoveRejected, ErrSmashLimit
		}
		if !p.selected.Smash(gen) {
			return MoveRejected, ErrInvalidSmash
		}
		p.smashes++
		return MoveApplied, nil
	}
	if !apply(kind, p.selected, gen) {
		return MoveRejected, nil
	}
	return MoveApplied, nil
}
