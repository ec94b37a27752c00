package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Button is one of the main menu buttons.
type Button int

const (
	ButtonStart Button = iota
	ButtonMusic
	ButtonSoundEffects
	ButtonQuit
)

// Buttons lists the menu buttons top to bottom.
var Buttons = []Button{ButtonStart, ButtonMusic, ButtonSoundEffects, ButtonQuit}

const (
	buttonW       = 200
	buttonH       = 40
	buttonSpacing = 50
)

// Center returns the centre of the button's label.
func (b Button) Center() core.Vec2 {
	return core.V(Width/2, Height/2+float64(b)*buttonSpacing)
}

// Rect returns the button's hit box.
func (b Button) Rect() core.Rect {
	return core.RectAround(b.Center(), buttonW, buttonH)
}

// Label renders the button text for the given toggle states.
func (b Button) Label(musicOn, soundEffectsOn bool) string {
	switch b {
	case ButtonStart:
		return "Start Game"
	case ButtonMusic:
		return "Music: " + onOff(musicOn)
	case ButtonSoundEffects:
		return "Sound Effects: " + onOff(soundEffectsOn)
	case ButtonQuit:
		return "Quit"
	default:
		return ""
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// ButtonAt returns the button under pos, if any.
func ButtonAt(pos core.Vec2) (Button, bool) {
	for _, b := range Buttons {
		if b.Rect().Contains(pos) {
			return b, true
		}
	}
	return 0, false
}
