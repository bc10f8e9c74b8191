package blocky

import "fmt"

// Axis selects which pairs of children Swap exchanges.
type Axis int

const (
	// Horizontal mirrors left and right: UR<->UL, LL<->LR.
	Horizontal Axis = iota
	// Vertical mirrors top and bottom: UR<->LR, UL<->LL.
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Direction selects the rotation sense.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Swap mirrors b's children along the given axis. Grandchildren keep
// their own order. A leaf is left untouched.
func (b *Block) Swap(axis Axis) {
	if b.IsLeaf() {
		return
	}
	c := b.Children
	switch axis {
	case Horizontal:
		c[UpperRight], c[UpperLeft] = c[UpperLeft], c[UpperRight]
		c[LowerLeft], c[LowerRight] = c[LowerRight], c[LowerLeft]
	case Vertical:
		c[UpperRight], c[LowerRight] = c[LowerRight], c[UpperRight]
		c[UpperLeft], c[LowerLeft] = c[LowerLeft], c[UpperLeft]
	default:
		return
	}
	b.relayout()
}

// Rotate turns b and every descendant a quarter turn. A leaf is left
// untouched.
func (b *Block) Rotate(dir Direction) {
	if b.IsLeaf() {
		return
	}
	c := b.Children
	switch dir {
	case Clockwise:
		c[0], c[1], c[2], c[3] = c[UpperLeft], c[LowerLeft], c[LowerRight], c[UpperRight]
	case CounterClockwise:
		c[0], c[1], c[2], c[3] = c[LowerRight], c[UpperRight], c[UpperLeft], c[LowerLeft]
	default:
		return
	}
	b.relayout()
	for _, child := range c {
		child.Rotate(dir)
	}
}

// CanSmash reports whether b may be smashed: it is neither the root nor
// a unit cell at the maximum depth.
func (b *Block) CanSmash() bool {
	return b.Level != 0 && b.Level < b.MaxDepth
}

// Smash discards b's subtree and replaces it with four freshly generated
// children. It returns false, leaving the tree unchanged, when b is the
// root or already at the maximum depth.
func (b *Block) Smash(gen *Generator) bool {
	if !b.CanSmash() {
		return false
	}
	children := make([]*Block, 4)
	for i := range children {
		children[i] = gen.Block(b.Level+1, b.MaxDepth)
	}
	b.Children = children
	b.Color = Color{}
	b.relayout()
	return true
}

// SelectAt descends from b towards the block at the given level that
// contains p. If a leaf is reached first, that leaf is returned.
//
// Precondition: 0 <= level <= b.MaxDepth. Violations panic.
func (b *Block) SelectAt(p Point, level int) *Block {
	if level < 0 || level > b.MaxDepth {
		panic(fmt.Sprintf("blocky: SelectAt: level %d outside [0, %d]", level, b.MaxDepth))
	}
	n := b
	for n.Level < level && !n.IsLeaf() {
		n = n.Children[n.quadrant(p)]
	}
	return n
}

// quadrant returns the index of the child whose quadrant holds p.
// Points on the centre lines go right and up.
func (b *Block) quadrant(p Point) int {
	cx := roundHalf(2*b.Position.X + b.Size)
	cy := roundHalf(2*b.Position.Y + b.Size)

	switch {
	case p.X >= cx && p.Y <= cy:
		return UpperRight
	case p.X <= cx && p.Y <= cy:
		return UpperLeft
	case p.X <= cx && p.Y >= cy:
		return LowerLeft
	default:
		return LowerRight
	}
}

// roundHalf returns n/2 rounded half-to-even.
func roundHalf(n int) int {
	return halfSize(n)
}
