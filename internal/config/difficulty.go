package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values return
// the empty preset, meaning "use the config as is".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// SmartDifficultyForPreset returns the smart-player difficulty for a
// preset, and false for presets that keep the configured value.
func SmartDifficultyForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 0, true
	case DifficultyNormal:
		return 2, true
	case DifficultyHard:
		return 5, true
	default:
		return 0, false
	}
}

// IsFixedPreset returns true if the preset leaves the config untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlockyPreset sets every smart player's difficulty from a preset.
func ApplyBlockyPreset(cfg *BlockyConfig, preset DifficultyPreset) {
	d, ok := SmartDifficultyForPreset(preset)
	if !ok {
		return
	}
	for variant, lineup := range cfg.Players {
		updated := make([]PlayerConfig, len(lineup))
		for i, p := range lineup {
			if p.Kind == "smart" {
				p.Difficulty = d
			}
			updated[i] = p
		}
		cfg.Players[variant] = updated
	}

	// Harder games also get fewer smashes.
	switch preset {
	case DifficultyEasy:
		cfg.Game.MaxSmashes = 2
	case DifficultyHard:
		cfg.Game.MaxSmashes = 1
	}
}
