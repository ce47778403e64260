package core

// Color is the foreground color of a screen cell. The platform maps it to an
// ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightGreen
	ColorBrightRed
	ColorGray
	ColorDarkGray
)
