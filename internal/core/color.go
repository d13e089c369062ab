package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to an ANSI 256-color code.
type Color uint8

// Palette used by the game and its overlays.
const (
	ColorDefault Color = iota
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightMagenta
	ColorBrightYellow
	ColorBrightWhite
	ColorPink
	ColorGray
)
