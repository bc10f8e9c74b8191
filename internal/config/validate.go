package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-blocky/internal/blocky"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Depth limits accepted for board.max_depth.
const (
	MinDepth = 1
	MaxDepth = 6
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration can be played.
func (c BlockyConfig) Validate() error {
	if c.Board.MaxDepth < MinDepth || c.Board.MaxDepth > MaxDepth {
		return invalid("board.max_depth %d outside %d..%d", c.Board.MaxDepth, MinDepth, MaxDepth)
	}
	if c.Board.Size < 0 {
		return invalid("board.size %d is negative", c.Board.Size)
	}
	if c.Board.SubdivideDecay < 0 {
		return invalid("board.subdivide_decay %g is negative", c.Board.SubdivideDecay)
	}
	if c.Game.Rounds < 1 {
		return invalid("game.rounds must be at least 1, got %d", c.Game.Rounds)
	}
	if c.Game.MaxSmashes < 0 {
		return invalid("game.max_smashes %d is negative", c.Game.MaxSmashes)
	}
	if c.Game.CPUDelayTicks < 0 {
		return invalid("game.cpu_delay_ticks %d is negative", c.Game.CPUDelayTicks)
	}
	switch c.Game.Goal {
	case GoalRandom, GoalBlob, GoalPerimeter:
	default:
		return invalid("game.goal %q is not random, blob or perimeter", c.Game.Goal)
	}
	for _, n := range c.Smart.MovesByDifficulty {
		if n < 1 {
			return invalid("smart.moves_by_difficulty entries must be positive")
		}
	}

	palette, err := c.BlockyPalette()
	if err != nil {
		return err
	}

	for variant, lineup := range c.Players {
		if len(lineup) < 1 {
			return invalid("players.%s has no players", variant)
		}
		if len(lineup) > len(palette) {
			return invalid("players.%s has %d players but the palette only %d colours", variant, len(lineup), len(palette))
		}
		for i, p := range lineup {
			if _, err := blocky.ParsePlayerKind(p.Kind); err != nil {
				return invalid("players.%s[%d]: %v", variant, i, err)
			}
			if p.Difficulty < 0 {
				return invalid("players.%s[%d]: difficulty %d is negative", variant, i, p.Difficulty)
			}
		}
	}
	return nil
}

// BlockyPalette converts the configured palette. Colours must be
// distinct and non-black, since black marks unset cells and frames.
func (c BlockyConfig) BlockyPalette() (blocky.Palette, error) {
	if len(c.Palette) == 0 {
		return nil, invalid("palette is empty")
	}
	out := make(blocky.Palette, 0, len(c.Palette))
	seen := make(map[blocky.Color]bool, len(c.Palette))
	for i, pc := range c.Palette {
		col, err := blocky.ParseHex(pc.Hex)
		if err != nil {
			return nil, invalid("palette[%d]: %v", i, err)
		}
		if col.IsZero() {
			return nil, invalid("palette[%d]: black is reserved", i)
		}
		if seen[col] {
			return nil, invalid("palette[%d]: duplicate colour %s", i, pc.Hex)
		}
		seen[col] = true
		name := pc.Name
		if name == "" {
			name = col.Hex()
		}
		out = append(out, blocky.PaletteEntry{Name: name, Color: col})
	}
	return out, nil
}
