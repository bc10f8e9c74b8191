package config

import (
	_ "embed"
)

//go:embed defaults/blocky.yaml
var defaultBlockyYAML []byte

// Variant ids with a built-in lineup.
const (
	VariantSolo  = "blocky"
	VariantDuel  = "blocky_duel"
	VariantWatch = "blocky_watch"
)

// DefaultBlockyConfig returns the default Blocky configuration.
func DefaultBlockyConfig() BlockyConfig {
	return BlockyConfig{
		Board: BoardConfig{
			MaxDepth:       4,
			Size:           0,
			SubdivideDecay: 0.25,
		},
		Game: GameConfig{
			Rounds:        5,
			MaxSmashes:    1,
			CPUDelayTicks: 45,
			Goal:          GoalRandom,
		},
		Players: map[string][]PlayerConfig{
			VariantSolo: {
				{Kind: "human"},
				{Kind: "smart", Difficulty: 2},
			},
			VariantDuel: {
				{Kind: "human"},
				{Kind: "human"},
			},
			VariantWatch: {
				{Kind: "random"},
				{Kind: "smart", Difficulty: 3},
			},
		},
		Smart: SmartConfig{
			MovesByDifficulty: []int{5, 10, 25, 50, 100, 150},
		},
		Palette: []PaletteColor{
			{Name: "Pacific Point", Hex: "#0180b5"},
			{Name: "Real Red", Hex: "#c72c3a"},
			{Name: "Old Olive", Hex: "#8a9747"},
			{Name: "Daffodil Delight", Hex: "#ffd35c"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case VariantSolo, VariantDuel, VariantWatch:
		return defaultBlockyYAML
	default:
		return nil
	}
}
