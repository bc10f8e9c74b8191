package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocky/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"level up", runeKey("["), core.ActionLevelUp, false},
		{"level down", runeKey("]"), core.ActionLevelDown, false},
		{"rotate cw", runeKey("r"), core.ActionRotateCW, false},
		{"rotate ccw", runeKey("e"), core.ActionRotateCCW, false},
		{"swap horizontal", runeKey("h"), core.ActionSwapHorizontal, false},
		{"swap vertical", runeKey("v"), core.ActionSwapVertical, false},
		{"smash", runeKey("x"), core.ActionSmash, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"restart", runeKey("n"), core.ActionRestart, false},
		{"back", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.expected, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("r"), &frame) {
		t.Error("rotate should not quit")
	}
	if km.MapKeyToFrame(runeKey("x"), &frame) {
		t.Error("smash should not quit")
	}
	if !frame.Has(core.ActionRotateCW) || !frame.Has(core.ActionSmash) {
		t.Error("frame should hold both actions")
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected core.Action
	}{
		{"motion", tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionMotion}, core.ActionNone},
		{"left click", tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionRotateCW},
		{"right click", tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionRotateCCW},
		{"wheel up", tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.ActionLevelUp},
		{"release", tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapMouseToFrame(tt.msg, &frame)

			if frame.Pointer == nil || frame.Pointer.X != 4 || frame.Pointer.Y != 2 {
				t.Fatalf("Pointer = %+v, expected (4, 2)", frame.Pointer)
			}
			for _, a := range []core.Action{core.ActionRotateCW, core.ActionRotateCCW, core.ActionLevelUp} {
				if frame.Has(a) != (a == tt.expected) {
					t.Errorf("Has(%v) = %v", a, frame.Has(a))
				}
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("r"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
