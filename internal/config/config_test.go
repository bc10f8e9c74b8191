package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-blocky/internal/blocky"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBlockyConfig().Validate(); err != nil {
		t.Fatalf("DefaultBlockyConfig().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseBlocky(defaultBlockyYAML)
	if err != nil {
		t.Fatalf("ParseBlocky(embedded) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBlockyConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultBlockyConfig())
	}
}

func TestParseBlockyPartialOverride(t *testing.T) {
	data := []byte(`
board:
  max_depth: 3
game:
  goal: perimeter
players:
  blocky_duel:
    - kind: human
    - kind: human
    - kind: smart
      difficulty: 1
`)
	cfg, err := ParseBlocky(data)
	if err != nil {
		t.Fatalf("ParseBlocky() error = %v", err)
	}
	if cfg.Board.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, expected 3", cfg.Board.MaxDepth)
	}
	if cfg.Board.SubdivideDecay != 0.25 {
		t.Errorf("SubdivideDecay = %g, expected default 0.25", cfg.Board.SubdivideDecay)
	}
	if cfg.Game.Goal != GoalPerimeter {
		t.Errorf("Goal = %q, expected perimeter", cfg.Game.Goal)
	}
	if got := len(cfg.Lineup(VariantDuel)); got != 3 {
		t.Errorf("duel lineup has %d players, expected 3", got)
	}
	if got := len(cfg.Lineup(VariantSolo)); got != 2 {
		t.Errorf("solo lineup has %d players, expected default 2", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BlockyConfig)
	}{
		{"depth too small", func(c *BlockyConfig) { c.Board.MaxDepth = 0 }},
		{"depth too large", func(c *BlockyConfig) { c.Board.MaxDepth = 7 }},
		{"negative size", func(c *BlockyConfig) { c.Board.Size = -1 }},
		{"no rounds", func(c *BlockyConfig) { c.Game.Rounds = 0 }},
		{"unknown goal", func(c *BlockyConfig) { c.Game.Goal = "corners" }},
		{"empty lineup", func(c *BlockyConfig) { c.Players[VariantSolo] = nil }},
		{"unknown kind", func(c *BlockyConfig) { c.Players[VariantSolo] = []PlayerConfig{{Kind: "oracle"}} }},
		{"bad hex", func(c *BlockyConfig) { c.Palette[0].Hex = "#12" }},
		{"black colour", func(c *BlockyConfig) { c.Palette[0].Hex = "#000000" }},
		{"duplicate colour", func(c *BlockyConfig) { c.Palette[1].Hex = c.Palette[0].Hex }},
		{"palette too small", func(c *BlockyConfig) { c.Palette = c.Palette[:1] }},
		{"zero moves", func(c *BlockyConfig) { c.Smart.MovesByDifficulty = []int{5, 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlockyConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadBlockyCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocky.yaml")
	if err := os.WriteFile(path, []byte("game:\n  rounds: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocky(path)
	if err != nil {
		t.Fatalf("LoadBlocky() error = %v", err)
	}
	if cfg.Game.Rounds != 9 {
		t.Errorf("Rounds = %d, expected 9", cfg.Game.Rounds)
	}

	if _, err := LoadBlocky(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBlocky(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  max_depth: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBlocky(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadBlocky(bad) = %v, expected ErrInvalidConfig", err)
	}
}

func TestBlockyPalette(t *testing.T) {
	p, err := DefaultBlockyConfig().BlockyPalette()
	if err != nil {
		t.Fatalf("BlockyPalette() error = %v", err)
	}
	if !reflect.DeepEqual(p, blocky.DefaultPalette()) {
		t.Errorf("BlockyPalette() = %v, expected the default palette", p)
	}
}

func TestApplyBlockyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		difficulty int
		maxSmashes int
	}{
		{DifficultyEasy, 0, 2},
		{DifficultyNormal, 2, 1},
		{DifficultyHard, 5, 1},
		{DifficultyFixed, 2, 1}, // unchanged
		{"", 2, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBlockyConfig()
			ApplyBlockyPreset(&cfg, tt.preset)

			smart := cfg.Lineup(VariantSolo)[1]
			if smart.Difficulty != tt.difficulty {
				t.Errorf("smart difficulty = %d, expected %d", smart.Difficulty, tt.difficulty)
			}
			if cfg.Game.MaxSmashes != tt.maxSmashes {
				t.Errorf("MaxSmashes = %d, expected %d", cfg.Game.MaxSmashes, tt.maxSmashes)
			}
		})
	}
}

func TestApplyBlockyPresetDoesNotShareDefaults(t *testing.T) {
	cfg := DefaultBlockyConfig()
	ApplyBlockyPreset(&cfg, DifficultyHard)

	if got := DefaultBlockyConfig().Lineup(VariantSolo)[1].Difficulty; got != 2 {
		t.Errorf("default difficulty changed to %d", got)
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("brutal") != "" {
		t.Error("ParsePreset(unknown) should return empty preset")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should be a fixed preset")
	}
}
