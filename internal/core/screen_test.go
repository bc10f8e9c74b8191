package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(NewRect(4, 0, 10, 5), 2, "Hi", ColorRed)

	// 10 wide box starting at 4: "Hi" starts at 4 + (10-2)/2 = 8
	if s.Get(8, 2) != 'H' || s.Get(9, 2) != 'i' {
		t.Errorf("DrawTextCentered: got %q%q at (8, 2)", s.Get(8, 2), s.Get(9, 2))
	}
	if s.GetCell(8, 2).Fg != ColorRed {
		t.Errorf("DrawTextCentered: Fg = %q, expected %q", s.GetCell(8, 2).Fg, ColorRed)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	// Check corners
	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(5, 4))
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.Get(x, 1))
		}
		if s.Get(x, 4) != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, s.Get(x, 4))
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.Get(1, y))
		}
		if s.Get(5, y) != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, s.Get(5, y))
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '─', ColorGray)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 2); c.Rune != '─' || c.Fg != ColorGray {
			t.Errorf("DrawHLine: got %+v at (%d, 2)", c, x)
		}
	}
	if s.Get(7, 2) != ' ' {
		t.Error("DrawHLine should stop after length cells")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(1, 1, 3, 2), ColorBlue)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if got := s.GetCell(x, y); got != (Cell{Rune: ' ', Bg: ColorBlue}) {
				t.Errorf("GetCell(%d, %d) = %+v, expected blue blank", x, y, got)
			}
		}
	}
	if s.GetCell(0, 0).Bg != ColorDefault {
		t.Error("FillRect should not affect outside area")
	}

	// Set keeps colours, SetColored keeps the background
	s.Set(1, 1, 'a')
	if got := s.GetCell(1, 1); got.Rune != 'a' || got.Bg != ColorBlue {
		t.Errorf("Set should keep background, got %+v", got)
	}
	s.SetColored(2, 1, 'b', ColorRed)
	if got := s.GetCell(2, 1); got != (Cell{Rune: 'b', Fg: ColorRed, Bg: ColorBlue}) {
		t.Errorf("SetColored = %+v, expected red on blue", got)
	}

	if got := s.GetCell(-1, 9); got != blankCell {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", got)
	}

	s.Clear()
	if got := s.GetCell(2, 1); got != blankCell {
		t.Errorf("After Clear, GetCell = %+v, expected blank", got)
	}
}

func TestScreenDrawBoxColored(t *testing.T) {
	s := NewScreen(8, 6)
	s.FillRect(NewRect(0, 0, 8, 6), ColorYellow)
	s.DrawBoxColored(NewRect(0, 0, 4, 3), BoxHeavy, ColorCyan)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┏'},
		{3, 0, '┓'},
		{0, 2, '┗'},
		{3, 2, '┛'},
		{1, 0, '━'},
		{0, 1, '┃'},
	}
	for _, tc := range tests {
		c := s.GetCell(tc.x, tc.y)
		if c.Rune != tc.want {
			t.Errorf("GetCell(%d, %d).Rune = %q, expected %q", tc.x, tc.y, c.Rune, tc.want)
		}
		if c.Fg != ColorCyan || c.Bg != ColorYellow {
			t.Errorf("GetCell(%d, %d) colours = %q on %q, expected cyan on yellow", tc.x, tc.y, c.Fg, c.Bg)
		}
	}

	// Inside untouched
	if s.Get(1, 1) != ' ' {
		t.Errorf("Box interior should be blank, got %q", s.Get(1, 1))
	}
}

func TestRGBColor(t *testing.T) {
	if got := RGBColor(1, 128, 181); got != "#0180b5" {
		t.Errorf("RGBColor() = %q, expected #0180b5", got)
	}
	if !ColorDefault.IsDefault() || ColorRed.IsDefault() {
		t.Error("IsDefault misreports")
	}
}
