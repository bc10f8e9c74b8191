package blocky

import "strings"

// Grid is a square of unit-cell colours indexed grid[col][row];
// grid[0][0] is the upper-left unit cell.
type Grid [][]Color

// Side returns the grid's side length.
func (g Grid) Side() int {
	return len(g)
}

// At returns the colour at column x, row y.
func (g Grid) At(x, y int) Color {
	return g[x][y]
}

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < len(g) && y >= 0 && y < len(g)
}

// String renders the grid row by row using each colour's initial.
func (g Grid) String(p Palette) string {
	var sb strings.Builder
	for y := 0; y < g.Side(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Side(); x++ {
			sb.WriteRune(p.Initial(g[x][y]))
		}
	}
	return sb.String()
}

// UnitCells returns the side length, in unit cells, of b's flattened grid.
// Trees whose geometry has not been computed yet count as one cell.
func (b *Block) UnitCells() int {
	if b.MaxDepth <= b.Level {
		return 1
	}
	return 1 << (b.MaxDepth - b.Level)
}

// Flatten projects b onto a grid of unit cells of side
// 2^(MaxDepth-Level).
func (b *Block) Flatten() Grid {
	if b.IsLeaf() {
		n := b.UnitCells()
		g := make(Grid, n)
		for x := range g {
			col := make([]Color, n)
			for y := range col {
				col[y] = b.Color
			}
			g[x] = col
		}
		return g
	}

	var parts [4]Grid
	for i, c := range b.Children {
		parts[i] = c.Flatten()
	}

	half := parts[UpperLeft].Side()
	g := make(Grid, 0, 2*half)
	// Left half: UL over LL, then right half: UR over LR.
	for i := 0; i < half; i++ {
		g = append(g, joinColumn(parts[UpperLeft][i], parts[LowerLeft][i]))
	}
	for i := 0; i < half; i++ {
		g = append(g, joinColumn(parts[UpperRight][i], parts[LowerRight][i]))
	}
	return g
}

func joinColumn(top, bottom []Color) []Color {
	col := make([]Color, 0, len(top)+len(bottom))
	col = append(col, top...)
	return append(col, bottom...)
}
