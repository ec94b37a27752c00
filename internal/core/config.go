package core

// Logical playfield size in pixels. Frontends scale this to their surface.
const (
	LogicalWidth  = 800
	LogicalHeight = 600
)

// RuntimeConfig contains configuration passed to the session at initialization.
// The session uses it for frontend-independent settings and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Frontend surface width (characters or pixels)
	ScreenH  int   // Frontend surface height (characters or pixels)
	TickRate int   // Frames per second requested from the frame driver (default 60)
	Seed     int64 // RNG seed for clouds and enemy start directions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TextAnchor selects which point of a text block a position refers to.
type TextAnchor int

const (
	AnchorTopLeft TextAnchor = iota
	AnchorCenter
)
