package core

import "fmt"

// Color is a terminal colour: an ANSI 256-colour index ("1", "244") or a
// true-colour hex string ("#0180b5"). The empty string is the terminal
// default.
type Color string

// Predefined colours for HUD elements.
const (
	ColorDefault      Color = ""
	ColorBlack        Color = "0"
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorBlue         Color = "4"
	ColorMagenta      Color = "5"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightRed    Color = "9"
	ColorBrightGreen  Color = "10"
	ColorBrightYellow Color = "11"
	ColorBrightCyan   Color = "14"
	ColorBrightWhite  Color = "15"
	ColorOrange       Color = "208"
	ColorGray         Color = "244"
)

// RGBColor returns the true-colour form of (r, g, b).
func RGBColor(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// IsDefault reports whether c is the terminal default colour.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
