// Package config provides YAML-based game configuration loading and
// difficulty presets for the Blocky variants.
package config

// BlockyConfig contains all configuration for the Blocky variants.
type BlockyConfig struct {
	Board   BoardConfig               `yaml:"board"`
	Game    GameConfig                `yaml:"game"`
	Players map[string][]PlayerConfig `yaml:"players"` // lineup per variant id
	Smart   SmartConfig               `yaml:"smart"`
	Palette []PaletteColor            `yaml:"palette"`
}

// BoardConfig defines how boards are generated.
type BoardConfig struct {
	MaxDepth       int     `yaml:"max_depth"`
	Size           int     `yaml:"size"`            // board side in pixels, 0 = fit the screen
	SubdivideDecay float64 `yaml:"subdivide_decay"` // split chance is exp(-decay * level)
}

// GameConfig defines the match rules.
type GameConfig struct {
	Rounds        int    `yaml:"rounds"`
	MaxSmashes    int    `yaml:"max_smashes"`     // per human player per match
	CPUDelayTicks int    `yaml:"cpu_delay_ticks"` // ticks a CPU move stays highlighted
	Goal          string `yaml:"goal"`            // "random", "blob" or "perimeter"
}

// PlayerConfig describes one seat in a lineup.
type PlayerConfig struct {
	Kind       string `yaml:"kind"`       // "human", "random" or "smart"
	Difficulty int    `yaml:"difficulty"` // smart players only
}

// SmartConfig tunes the smart computer player.
type SmartConfig struct {
	MovesByDifficulty []int `yaml:"moves_by_difficulty"`
}

// PaletteColor is a named board colour.
type PaletteColor struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// Goal choices accepted in GameConfig.Goal.
const (
	GoalRandom    = "random"
	GoalBlob      = "blob"
	GoalPerimeter = "perimeter"
)

// Lineup returns the configured players for a variant.
func (c BlockyConfig) Lineup(variant string) []PlayerConfig {
	return c.Players[variant]
}
