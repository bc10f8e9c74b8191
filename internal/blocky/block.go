// Package blocky implements the Blocky board: a recursive quadtree of
// coloured squares, its structural mutators, the flattening projector
// and the goal scorers. It has no terminal or storage dependencies.
package blocky

import (
	"fmt"
	"math"
)

// Child indices. Children are always stored in this order.
const (
	UpperRight = iota
	UpperLeft
	LowerLeft
	LowerRight
)

// Point is a pixel coordinate; (0, 0) is the top-left corner of the board.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Block is one square of the board.
//
// A Block is either a leaf holding a colour, or it is subdivided into
// exactly four children ordered upper-right, upper-left, lower-left,
// lower-right. Position, Size, MaxDepth and Parent are derived data
// rewritten by UpdateLocations after every structural change.
type Block struct {
	Position    Point
	Size        int
	Color       Color // set iff the block has no children
	Level       int   // root is 0
	MaxDepth    int   // same value on every block of a tree
	Highlighted bool
	Children    []*Block
	Parent      *Block // non-owning; nil for the root
}

// NewLeaf returns an undivided block of the given colour.
func NewLeaf(level int, c Color) *Block {
	return &Block{Level: level, Color: c}
}

// NewParent returns a block subdivided into the given children, in
// UR, UL, LL, LR order. It panics if any child is nil.
func NewParent(level int, children [4]*Block) *Block {
	b := &Block{Level: level, Children: make([]*Block, 4)}
	for i, c := range children {
		if c == nil {
			panic(fmt.Sprintf("blocky: NewParent: child %d is nil", i))
		}
		b.Children[i] = c
	}
	return b
}

// IsLeaf reports whether b has no children.
func (b *Block) IsLeaf() bool {
	return len(b.Children) == 0
}

// Height returns the number of levels below b (0 for a leaf).
func (b *Block) Height() int {
	if b.IsLeaf() {
		return 0
	}
	h := 0
	for _, c := range b.Children {
		if ch := c.Height(); ch > h {
			h = ch
		}
	}
	return h + 1
}

// UpdateLocations sets b's position and size and pushes the geometry
// down to every descendant.
//
// The depth stored on every block is the larger of b.MaxDepth and the
// level of the deepest leaf, so hand-built trees get a consistent
// MaxDepth without setting it explicitly.
//
// Precondition: size >= 0.
func (b *Block) UpdateLocations(topLeft Point, size int) {
	maxDepth := b.MaxDepth
	if deepest := b.Level + b.Height(); deepest > maxDepth {
		maxDepth = deepest
	}
	b.layout(topLeft, size, maxDepth, b.Parent)
}

// relayout recomputes the geometry below b after a structural change.
func (b *Block) relayout() {
	b.layout(b.Position, b.Size, b.MaxDepth, b.Parent)
}

func (b *Block) layout(topLeft Point, size, maxDepth int, parent *Block) {
	b.Position = topLeft
	b.Size = size
	b.MaxDepth = maxDepth
	b.Parent = parent
	if b.IsLeaf() {
		return
	}

	half := halfSize(size)
	x, y := topLeft.X, topLeft.Y
	b.Children[UpperRight].layout(Pt(x+half, y), half, maxDepth, b)
	b.Children[UpperLeft].layout(Pt(x, y), half, maxDepth, b)
	b.Children[LowerLeft].layout(Pt(x, y+half), half, maxDepth, b)
	b.Children[LowerRight].layout(Pt(x+half, y+half), half, maxDepth, b)
}

// halfSize rounds size/2 half-to-even.
func halfSize(size int) int {
	return int(math.RoundToEven(float64(size) / 2))
}

// Walk visits b and every descendant in pre-order.
// Returning false from fn stops the descent below that block.
func (b *Block) Walk(fn func(*Block) bool) {
	if !fn(b) {
		return
	}
	for _, c := range b.Children {
		c.Walk(fn)
	}
}

// Leaves returns every leaf below (or equal to) b, in pre-order.
func (b *Block) Leaves() []*Block {
	var out []*Block
	b.Walk(func(n *Block) bool {
		if n.IsLeaf() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Root follows parent links to the top of the tree.
func (b *Block) Root() *Block {
	n := b
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Clone returns a deep copy of the subtree rooted at b. The copy's root
// has no parent and Highlighted flags are preserved.
func (b *Block) Clone() *Block {
	c := b.cloneInto(nil)
	return c
}

func (b *Block) cloneInto(parent *Block) *Block {
	c := &Block{
		Position:    b.Position,
		Size:        b.Size,
		Color:       b.Color,
		Level:       b.Level,
		MaxDepth:    b.MaxDepth,
		Highlighted: b.Highlighted,
		Parent:      parent,
	}
	if !b.IsLeaf() {
		c.Children = make([]*Block, len(b.Children))
		for i, ch := range b.Children {
			c.Children[i] = ch.cloneInto(c)
		}
	}
	return c
}

// Equal reports whether a and b have the same shape, colours, levels
// and geometry. Highlight state is ignored.
func Equal(a, b *Block) bool {
	if a.Position != b.Position || a.Size != b.Size || a.Color != b.Color ||
		a.Level != b.Level || a.MaxDepth != b.MaxDepth ||
		len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
