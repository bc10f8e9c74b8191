package blocky

import (
	"math"
	"math/rand"
)

// DefaultDecay is the default subdivision decay: a block at level l
// splits with probability exp(-DefaultDecay * l).
const DefaultDecay = 0.25

// Generator builds random boards. All randomness comes from the injected
// rng so boards are reproducible from a seed.
type Generator struct {
	rng     *rand.Rand
	palette Palette
	decay   float64
}

// NewGenerator creates a generator drawing leaf colours from palette.
// An empty palette falls back to DefaultPalette.
func NewGenerator(rng *rand.Rand, palette Palette) *Generator {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	return &Generator{rng: rng, palette: palette, decay: DefaultDecay}
}

// WithDecay sets the subdivision decay and returns g.
func (g *Generator) WithDecay(decay float64) *Generator {
	if decay >= 0 {
		g.decay = decay
	}
	return g
}

// Palette returns the generator's palette.
func (g *Generator) Palette() Palette {
	return g.palette
}

// RandomColor picks a palette colour uniformly.
func (g *Generator) RandomColor() Color {
	return g.palette[g.rng.Intn(len(g.palette))].Color
}

// Block returns a random block at the given level, subdivided at most
// down to maxDepth. Position and size are left for UpdateLocations.
//
// Precondition: level <= maxDepth.
func (g *Generator) Block(level, maxDepth int) *Block {
	roll := g.rng.Float64()
	if roll < math.Exp(-g.decay*float64(level)) && level+1 <= maxDepth {
		b := &Block{Level: level, MaxDepth: maxDepth, Children: make([]*Block, 4)}
		for i := range b.Children {
			b.Children[i] = g.Block(level+1, maxDepth)
		}
		return b
	}
	return &Block{Level: level, MaxDepth: maxDepth, Color: g.RandomColor()}
}

// Board returns a random root block of the given size with geometry set.
func (g *Generator) Board(maxDepth, size int) *Block {
	b := g.Block(0, maxDepth)
	b.UpdateLocations(Point{}, size)
	return b
}
