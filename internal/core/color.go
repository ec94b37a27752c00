package core

// Color represents a palette entry.
// Frontends map it to ANSI 256-color codes (terminal) or RGBA (window).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorSkyLight // (135, 206, 235)
	ColorSky      // (100, 149, 237)
	ColorSkyDeep  // (42, 170, 138)
	ColorSun      // (255, 255, 190)
)
