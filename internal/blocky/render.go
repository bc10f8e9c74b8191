package blocky

import (
	"fmt"
	"io"
	"strings"
)

// Outline thicknesses used by Rectangles. Zero means a filled rectangle.
const (
	FillThickness      = 0
	FrameThickness     = 3
	HighlightThickness = 5
)

// Rect describes one rectangle for a renderer to draw.
type Rect struct {
	Color     Color
	Position  Point
	Size      int
	Thickness int // 0 fills, >0 outlines
}

// Filled reports whether r is a filled rectangle.
func (r Rect) Filled() bool {
	return r.Thickness == FillThickness
}

// Rectangles returns everything needed to draw b: a filled rectangle and
// a frame for every leaf, plus a highlight outline for every highlighted
// block. The order carries no meaning.
func (b *Block) Rectangles() []Rect {
	var out []Rect
	b.Walk(func(n *Block) bool {
		if n.Highlighted {
			out = append(out, n.rect(HighlightColor, HighlightThickness))
		}
		if n.IsLeaf() {
			out = append(out,
				n.rect(n.Color, FillThickness),
				n.rect(FrameColor, FrameThickness),
			)
		}
		return true
	})
	return out
}

func (b *Block) rect(c Color, thickness int) Rect {
	return Rect{Color: c, Position: b.Position, Size: b.Size, Thickness: thickness}
}

// Dump writes an indented description of the tree rooted at b. Leaves
// show their colour name. With verbose set, highlight state and max
// depth are included.
func (b *Block) Dump(w io.Writer, p Palette, verbose bool) error {
	return b.dump(w, p, verbose, 0)
}

func (b *Block) dump(w io.Writer, p Palette, verbose bool, indent int) error {
	pad := strings.Repeat("  ", indent)
	var err error
	if b.IsLeaf() {
		_, err = fmt.Fprintf(w, "%s%s: %s\n", pad, p.Name(b.Color), b.attributes(verbose))
	} else {
		_, err = fmt.Fprintf(w, "%s%s\n", pad, b.attributes(verbose))
	}
	if err != nil {
		return err
	}
	for _, c := range b.Children {
		if err := c.dump(w, p, verbose, indent+1); err != nil {
			return err
		}
	}
	return nil
}

func (b *Block) attributes(verbose bool) string {
	s := fmt.Sprintf("pos=(%d, %d), size=%d, level=%d", b.Position.X, b.Position.Y, b.Size, b.Level)
	if verbose {
		s += fmt.Sprintf(", highlighted=%t, max_depth=%d", b.Highlighted, b.MaxDepth)
	}
	return s
}
