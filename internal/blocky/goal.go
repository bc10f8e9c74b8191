package blocky

import (
	"fmt"
	"strings"
)

// GoalKind identifies a scoring strategy.
type GoalKind int

const (
	GoalBlob GoalKind = iota
	GoalPerimeter
)

// String returns the config name of the goal kind.
func (k GoalKind) String() string {
	switch k {
	case GoalBlob:
		return "blob"
	case GoalPerimeter:
		return "perimeter"
	default:
		return "unknown"
	}
}

// ParseGoalKind converts "blob" or "perimeter" to a GoalKind.
func ParseGoalKind(s string) (GoalKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blob":
		return GoalBlob, nil
	case "perimeter":
		return GoalPerimeter, nil
	default:
		return 0, fmt.Errorf("blocky: unknown goal %q", s)
	}
}

// Goal scores a board for one target colour.
type Goal interface {
	// Score returns the current score of board; never negative.
	Score(board *Block) int
	// Description explains the goal to a player.
	Description() string
	// Color returns the goal's target colour.
	Color() Color
	// Kind identifies the strategy.
	Kind() GoalKind
}

// NewGoal returns the goal of the given kind for target colour c.
func NewGoal(kind GoalKind, c Color) Goal {
	if kind == GoalPerimeter {
		return PerimeterGoal{color: c}
	}
	return BlobGoal{color: c}
}

// BlobGoal rewards the largest 4-connected region of the target colour.
type BlobGoal struct {
	color Color
}

// NewBlobGoal returns a blob goal for colour c.
func NewBlobGoal(c Color) BlobGoal {
	return BlobGoal{color: c}
}

// Color returns the target colour.
func (g BlobGoal) Color() Color { return g.color }

// Kind returns GoalBlob.
func (g BlobGoal) Kind() GoalKind { return GoalBlob }

// Description explains the blob goal.
func (g BlobGoal) Description() string {
	return "Create the largest connected blob of this goal's target colour, anywhere within the Block"
}

// visit marks for the blob flood fill.
type visit int8

const (
	unvisited visit = iota - 1
	visitedOther
	visitedTarget
)

// Score returns the number of unit cells in the largest blob of the
// target colour, or 0 if the colour is absent.
func (g BlobGoal) Score(board *Block) int {
	grid := board.Flatten()
	n := grid.Side()

	marks := make([][]visit, n)
	for x := range marks {
		marks[x] = make([]visit, n)
		for y := range marks[x] {
			marks[x][y] = unvisited
		}
	}

	best := 0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if size := g.undiscoveredBlobSize(x, y, grid, marks); size > best {
				best = size
			}
		}
	}
	return best
}

// undiscoveredBlobSize returns the size of the blob of the target colour
// containing (x, y) made only of cells not visited yet, marking every
// cell it inspects. Out-of-bounds cells count 0.
func (g BlobGoal) undiscoveredBlobSize(x, y int, grid Grid, marks [][]visit) int {
	if !grid.InBounds(x, y) || marks[x][y] != unvisited {
		return 0
	}
	if grid[x][y] != g.color {
		marks[x][y] = visitedOther
		return 0
	}
	marks[x][y] = visitedTarget
	return 1 +
		g.undiscoveredBlobSize(x, y+1, grid, marks) +
		g.undiscoveredBlobSize(x+1, y, grid, marks) +
		g.undiscoveredBlobSize(x, y-1, grid, marks) +
		g.undiscoveredBlobSize(x-1, y, grid, marks)
}

// PerimeterGoal rewards target-colour unit cells on the board's outer
// ring. Corner cells count twice.
type PerimeterGoal struct {
	color Color
}

// NewPerimeterGoal returns a perimeter goal for colour c.
func NewPerimeterGoal(c Color) PerimeterGoal {
	return PerimeterGoal{color: c}
}

// Color returns the target colour.
func (g PerimeterGoal) Color() Color { return g.color }

// Kind returns GoalPerimeter.
func (g PerimeterGoal) Kind() GoalKind { return GoalPerimeter }

// Description explains the perimeter goal.
func (g PerimeterGoal) Description() string {
	return "Put the most possible units of this goal's target colour on the outer perimeter of the board"
}

// Score counts target cells on the top and bottom rows, then on the
// left and right columns.
func (g PerimeterGoal) Score(board *Block) int {
	grid := board.Flatten()
	n := grid.Side()
	last := n - 1

	score := 0
	for col := 0; col < n; col++ {
		if grid[col][0] == g.color {
			score++
		}
		if grid[col][last] == g.color {
			score++
		}
	}
	for row := 0; row < n; row++ {
		if grid[0][row] == g.color {
			score++
		}
		if grid[last][row] == g.color {
			score++
		}
	}
	return score
}
