package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Renderer draws primitives onto a frontend surface in logical pixels.
// The session calls it once per frame per visible element; nothing is returned.
type Renderer interface {
	// Clear fills the whole surface.
	Clear(c core.Color)
	FillRect(r core.Rect, c core.Color)
	FillCircle(center core.Vec2, radius float64, c core.Color)
	// DrawSprite draws a sprite centred on pos, flipped horizontally when mirrored.
	DrawSprite(s Sprite, pos core.Vec2, mirrored bool)
	// DrawText draws text anchored at pos. Size is a nominal font size in pixels.
	DrawText(text string, pos core.Vec2, anchor core.TextAnchor, size float64, c core.Color)
}

// Audio plays music and sound effects.
// Failures are reported, never fatal: the session folds them into its audio toggles.
type Audio interface {
	PlayMusic(track core.Track) error
	PauseMusic()
	ResumeMusic() error
	StopMusic()
	SetVolume(v float64) error
	PlaySound(id core.Sound) error
}

// SilentAudio is an Audio that accepts every call and plays nothing.
type SilentAudio struct{}

func (SilentAudio) PlayMusic(core.Track) error { return nil }
func (SilentAudio) PauseMusic()                {}
func (SilentAudio) ResumeMusic() error         { return nil }
func (SilentAudio) StopMusic()                 {}
func (SilentAudio) SetVolume(float64) error    { return nil }
func (SilentAudio) PlaySound(core.Sound) error { return nil }

var _ Audio = SilentAudio{}
