package blocky

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every error Validate returns.
var ErrInvariant = errors.New("blocky: invariant violated")

// Validate checks the representation invariants of the tree rooted at b:
// leaf iff coloured, zero or four children, uniform max depth, levels
// increasing by one, level <= max depth, parent links and child geometry
// consistent with the parent's square.
func (b *Block) Validate() error {
	return b.validate(b.MaxDepth, b.Parent)
}

func (b *Block) validate(maxDepth int, parent *Block) error {
	switch {
	case len(b.Children) != 0 && len(b.Children) != 4:
		return b.invariant("has %d children", len(b.Children))
	case b.IsLeaf() && b.Color.IsZero():
		return b.invariant("leaf without colour")
	case !b.IsLeaf() && !b.Color.IsZero():
		return b.invariant("subdivided block with colour %s", b.Color.Hex())
	case b.MaxDepth != maxDepth:
		return b.invariant("max depth %d, tree uses %d", b.MaxDepth, maxDepth)
	case b.Level > b.MaxDepth:
		return b.invariant("level above max depth %d", b.MaxDepth)
	case b.Parent != parent:
		return b.invariant("stale parent link")
	}
	if b.IsLeaf() {
		return nil
	}

	half := halfSize(b.Size)
	want := [4]Point{
		Pt(b.Position.X+half, b.Position.Y),
		b.Position,
		Pt(b.Position.X, b.Position.Y+half),
		Pt(b.Position.X+half, b.Position.Y+half),
	}
	for i, c := range b.Children {
		if c.Level != b.Level+1 {
			return c.invariant("child level, parent at %d", b.Level)
		}
		if c.Size != half || c.Position != want[i] {
			return c.invariant("geometry does not match quadrant %d of parent", i)
		}
		if err := c.validate(maxDepth, b); err != nil {
			return err
		}
	}
	return nil
}

func (b *Block) invariant(format string, args ...any) error {
	return fmt.Errorf("%w: block at level %d pos=(%d, %d): %s",
		ErrInvariant, b.Level, b.Position.X, b.Position.Y, fmt.Sprintf(format, args...))
}
