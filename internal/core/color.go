package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Non-default values are ANSI 256-color codes offset by one, so the zero
// value means "terminal default".
type Color uint16

// Predefined colors for game elements.
const (
	ColorDefault     Color = 0
	ColorRed         Color = 1 + 1
	ColorGreen       Color = 2 + 1
	ColorYellow      Color = 3 + 1
	ColorBlue        Color = 4 + 1
	ColorMagenta     Color = 5 + 1
	ColorCyan        Color = 6 + 1
	ColorWhite       Color = 7 + 1
	ColorBrightRed   Color = 9 + 1
	ColorBrightGreen Color = 10 + 1
	ColorBrightWhite Color = 15 + 1
	ColorBrown       Color = 94 + 1
	ColorOrange      Color = 208 + 1
	ColorGray        Color = 245 + 1
)

// ANSI returns the color for a raw ANSI 256-color code.
func ANSI(code uint8) Color {
	return Color(code) + 1
}

// Code returns the ANSI 256-color code and false for ColorDefault.
func (c Color) Code() (uint8, bool) {
	if c == ColorDefault {
		return 0, false
	}
	return uint8(c - 1), true
}

// RGB maps an 8-bit RGB triple onto the 6x6x6 cube of the 256-color palette.
func RGB(r, g, b uint8) Color {
	q := func(v uint8) uint8 {
		return uint8((int(v)*5 + 127) / 255)
	}
	return ANSI(16 + 36*q(r) + 6*q(g) + q(b))
}

// standard is the xterm palette for codes 0-15.
var standard = [16]color.RGBA{
	{0, 0, 0, 255}, {205, 0, 0, 255}, {0, 205, 0, 255}, {205, 205, 0, 255},
	{0, 0, 238, 255}, {205, 0, 205, 255}, {0, 205, 205, 255}, {229, 229, 229, 255},
	{127, 127, 127, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{92, 92, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Palette returns the xterm palette colour, light gray for ColorDefault.
// Desktop frontends use it to paint terminal-coloured art.
func (c Color) Palette() color.RGBA {
	code, ok := c.Code()
	switch {
	case !ok:
		return color.RGBA{R: 208, G: 208, B: 208, A: 255}
	case code < 16:
		return standard[code]
	case code < 232:
		i := code - 16
		return color.RGBA{R: cubeLevels[i/36], G: cubeLevels[i/6%6], B: cubeLevels[i%6], A: 255}
	default:
		v := 8 + 10*(code-232)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
}
