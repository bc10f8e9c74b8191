package blocky

import "fmt"

// Color is an RGB colour. The zero value means "no colour" and never
// appears in a palette.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsZero reports whether c is the "no colour" value.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns the colour in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a #rrggbb (or rrggbb) string.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("blocky: invalid colour %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("blocky: invalid colour %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Colours used by the board renderer.
var (
	Black = RGB(0, 0, 0)

	PacificPoint      = RGB(1, 128, 181)
	RealRed           = RGB(199, 44, 58)
	OldOlive          = RGB(138, 151, 71)
	DaffodilDelight   = RGB(255, 211, 92)
	TemptingTurquoise = RGB(75, 196, 213)

	HighlightColor = TemptingTurquoise
	FrameColor     = Black
)

// PaletteEntry is a named, selectable colour.
type PaletteEntry struct {
	Name  string
	Color Color
}

// Palette is the finite set of colours leaves are drawn from.
type Palette []PaletteEntry

// DefaultPalette returns the four classic Blocky colours.
func DefaultPalette() Palette {
	return Palette{
		{Name: "Pacific Point", Color: PacificPoint},
		{Name: "Real Red", Color: RealRed},
		{Name: "Old Olive", Color: OldOlive},
		{Name: "Daffodil Delight", Color: DaffodilDelight},
	}
}

// Colors returns the palette colours in order.
func (p Palette) Colors() []Color {
	out := make([]Color, len(p))
	for i, e := range p {
		out[i] = e.Color
	}
	return out
}

// Name returns the palette name of c, or its hex form if c is not in the palette.
func (p Palette) Name(c Color) string {
	for _, e := range p {
		if e.Color == c {
			return e.Name
		}
	}
	if c.IsZero() {
		return "none"
	}
	return c.Hex()
}

// Initial returns a single letter for c, used by text grids.
func (p Palette) Initial(c Color) rune {
	for _, e := range p {
		if e.Color == c && e.Name != "" {
			return rune(e.Name[0])
		}
	}
	return '?'
}
