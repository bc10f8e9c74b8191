package blocky

import (
	"strings"
	"testing"

	blk "github.com/vovakirdan/tui-blocky/internal/blocky"
	"github.com/vovakirdan/tui-blocky/internal/config"
	"github.com/vovakirdan/tui-blocky/internal/core"
	"github.com/vovakirdan/tui-blocky/internal/registry"
)

func testConfig() config.BlockyConfig {
	cfg := config.DefaultBlockyConfig()
	cfg.Board.MaxDepth = 3
	cfg.Game.CPUDelayTicks = 0
	cfg.Game.Rounds = 2
	return cfg
}

func newTestGame(variant string, seed int64) *Game {
	g := New(variant)
	g.ResetWithConfig(core.RuntimeConfig{Seed: seed, ScreenW: 100, ScreenH: 30, TickRate: 60}, testConfig())
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(config.VariantWatch, 12345)
	g2 := newTestGame(config.VariantWatch, 12345)

	if g1.Snapshot() != g2.Snapshot() {
		t.Fatalf("initial snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}

	input := core.NewInputFrame()
	for i := 0; i < 3; i++ {
		g1.Step(input)
		g2.Step(input)
	}

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshots differ after play:\n%+v\n%+v", snap1, snap2)
	}
	if !blk.Equal(g1.Board(), g2.Board()) {
		t.Error("boards differ after identical play")
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := newTestGame(config.VariantWatch, 1).Snapshot()
	b := newTestGame(config.VariantWatch, 2).Snapshot()
	if a.Grid == b.Grid {
		t.Error("different seeds should generate different boards")
	}
}

func TestComputerMatchRunsToCompletion(t *testing.T) {
	g := newTestGame(config.VariantWatch, 7)

	// Two rounds of two players, one tick per computer turn.
	for i := 0; i < 3; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			t.Fatalf("game over after %d ticks, expected 4", i+1)
		}
	}
	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Fatal("game should be over after 4 ticks")
	}

	if err := g.Board().Validate(); err != nil {
		t.Errorf("board invariants broken: %v", err)
	}

	res := g.MatchResult()
	if res.GameID != config.VariantWatch || res.Rounds != 2 || res.Seed != 7 {
		t.Errorf("MatchResult() = %+v", res)
	}
	if len(res.Players) != 2 {
		t.Fatalf("MatchResult() has %d players, expected 2", len(res.Players))
	}
	if res.Players[0].Kind != "random" || res.Players[1].Kind != "smart" {
		t.Errorf("player kinds = %s, %s", res.Players[0].Kind, res.Players[1].Kind)
	}
	if res.Players[0].Color == res.Players[1].Color {
		t.Error("players should have distinct target colours")
	}
	if res.WinnerID != core.Winner(res.Players) {
		t.Errorf("WinnerID = %d, expected %d", res.WinnerID, core.Winner(res.Players))
	}

	// Further steps are ignored
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	if g.Snapshot() != before {
		t.Error("Step after game over should not change state")
	}
}

func TestCPUDelayHighlightsTarget(t *testing.T) {
	g := New(config.VariantWatch)
	cfg := testConfig()
	cfg.Game.CPUDelayTicks = 3
	g.ResetWithConfig(core.RuntimeConfig{Seed: 5, ScreenW: 100, ScreenH: 30}, cfg)

	g.Step(core.NewInputFrame())
	if g.cpuMove == nil || !g.cpuMove.Target.Highlighted {
		t.Fatal("chosen block should be highlighted while the CPU waits")
	}
	target := g.cpuMove.Target

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.cpuMove != nil {
		t.Error("CPU move should be applied after the delay")
	}
	if target.Highlighted {
		t.Error("highlight should be cleared once the move is applied")
	}
	if g.Snapshot().Current != 2 {
		t.Errorf("Current = %d, expected player 2", g.Snapshot().Current)
	}
}

func TestHumanMoveEndsTurn(t *testing.T) {
	g := newTestGame(config.VariantSolo, 42)

	// Selecting alone does not end the turn
	g.Step(frameWith(core.ActionLevelDown))
	if g.Snapshot().Current != 1 {
		t.Fatalf("Current = %d, expected player 1 still", g.Snapshot().Current)
	}

	g.Step(frameWith(core.ActionRotateCW))
	if g.Snapshot().Current != 2 {
		t.Errorf("Current = %d, expected the CPU after a move", g.Snapshot().Current)
	}
	if !strings.Contains(g.status, "rotate clockwise") {
		t.Errorf("status = %q, expected the move to be reported", g.status)
	}

	g.Step(core.NewInputFrame())
	if snap := g.Snapshot(); snap.Current != 1 || snap.Round != 2 {
		t.Errorf("after CPU turn got player %d round %d, expected player 1 round 2", snap.Current, snap.Round)
	}
}

func TestHumanSmashOfWholeBoardRejected(t *testing.T) {
	g := newTestGame(config.VariantSolo, 42)

	g.Step(frameWith(core.ActionSmash))
	if g.Snapshot().Current != 1 {
		t.Error("a rejected smash should keep the turn")
	}
	if !strings.Contains(g.status, "cannot smash") {
		t.Errorf("status = %q, expected smash rejection", g.status)
	}
	if g.seats[0].human.SmashesLeft() != 1 {
		t.Error("a rejected smash should not use up the allowance")
	}
}

func TestPointerMovement(t *testing.T) {
	g := newTestGame(config.VariantSolo, 3)
	unit := g.layout.unit
	start := g.pointer

	g.Step(frameWith(core.ActionRight))
	if g.pointer.X != start.X+unit {
		t.Errorf("pointer.X = %d, expected %d", g.pointer.X, start.X+unit)
	}

	for i := 0; i < 100; i++ {
		g.Step(frameWith(core.ActionLeft, core.ActionUp))
	}
	if g.pointer != (blk.Point{}) {
		t.Errorf("pointer = %+v, expected clamped to origin", g.pointer)
	}

	in := core.NewInputFrame()
	in.SetPointer(g.layout.originX+3*cellW, g.layout.originY+5)
	g.Step(in)
	if g.pointer != blk.Pt(3, 5) {
		t.Errorf("mouse pointer = %+v, expected (3, 5)", g.pointer)
	}

	// Clicks outside the board are ignored
	in.SetPointer(g.layout.hudX+2, g.layout.originY)
	g.Step(in)
	if g.pointer != blk.Pt(3, 5) {
		t.Errorf("pointer moved to %+v by a click outside the board", g.pointer)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(config.VariantWatch, 9)

	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	tick := g.Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("paused game should not advance")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestStateReportsPlayerOneScore(t *testing.T) {
	g := newTestGame(config.VariantDuel, 11)
	want := g.seats[0].player.Goal().Score(g.Board())
	if got := g.State().Score; got != want {
		t.Errorf("State().Score = %d, expected %d", got, want)
	}
}

func TestNewLayout(t *testing.T) {
	tests := []struct {
		name               string
		w, h, depth, size  int
		expectedSize, unit int
	}{
		{"small terminal", 80, 24, 4, 0, 16, 1},
		{"large terminal", 200, 60, 3, 0, 56, 7},
		{"explicit size", 80, 24, 2, 12, 12, 3},
		{"too small", 20, 5, 3, 0, 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLayout(tt.w, tt.h, tt.depth, tt.size)
			if l.size != tt.expectedSize || l.unit != tt.unit {
				t.Errorf("newLayout() size=%d unit=%d, expected size=%d unit=%d", l.size, l.unit, tt.expectedSize, tt.unit)
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(config.VariantSolo, 21)
	screen := core.NewScreen(100, 30)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "BLOCKY") {
		t.Error("HUD should show the variant title")
	}
	if !strings.Contains(out, "Round 1/2") {
		t.Error("HUD should show the round")
	}

	if got := screen.Get(g.layout.hudX, g.layout.originY+1); got != '─' {
		t.Errorf("HUD separator = %q, expected '─'", got)
	}

	// The board's top-left cell carries a palette colour
	cell := screen.GetCell(g.layout.originX, g.layout.originY)
	if cell.Bg == core.ColorDefault {
		t.Error("board cells should have a background colour")
	}
}

func TestRenderPausedOverlayCentered(t *testing.T) {
	g := newTestGame(config.VariantWatch, 21)
	g.Step(frameWith(core.ActionPause))

	screen := core.NewScreen(100, 30)
	g.Render(screen)

	// "Press P to resume" gives a 21x5 box around the centre (50, 15),
	// so the box spans x 40..60 and y 13..17.
	if got := screen.Get(40, 13); got != '┌' {
		t.Errorf("box corner = %q, expected '┌'", got)
	}
	if row := []rune(screen.Row(14)); string(row[47:53]) != "PAUSED" {
		t.Errorf("row 14 = %q, expected PAUSED at column 47", string(row))
	}
	if got := screen.GetCell(47, 14).Fg; got != core.ColorBrightYellow {
		t.Errorf("title Fg = %q, expected %q", got, core.ColorBrightYellow)
	}
	if row := []rune(screen.Row(16)); string(row[42:59]) != "Press P to resume" {
		t.Errorf("row 16 = %q, expected the subtitle at column 42", string(row))
	}
}

func TestLayoutToBoard(t *testing.T) {
	l := newLayout(80, 24, 2, 12)

	tests := []struct {
		name   string
		x, y   int
		want   blk.Point
		inside bool
	}{
		{"origin", l.originX, l.originY, blk.Pt(0, 0), true},
		{"second half of a cell", l.originX + 1, l.originY, blk.Pt(0, 0), true},
		{"last pixel", l.originX + 11*cellW + 1, l.originY + 11, blk.Pt(11, 11), true},
		{"margin", 0, l.originY, blk.Point{}, false},
		{"right of board", l.originX + 12*cellW, l.originY, blk.Point{}, false},
		{"below board", l.originX, l.originY + 12, blk.Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := l.toBoard(tt.x, tt.y)
			if ok != tt.inside || p != tt.want {
				t.Errorf("toBoard(%d, %d) = %+v, %v, expected %+v, %v", tt.x, tt.y, p, ok, tt.want, tt.inside)
			}
		})
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q is not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, expected %q", g.Title(), v.Title)
		}
	}
}
