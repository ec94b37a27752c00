package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// keyState reports key state for one frame. Pressed is level triggered,
// justPressed fires only on the frame the key went down.
type keyState struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// Run and jump keys are held; the rest fire once per press.
var (
	heldBindings = map[core.Action][]ebiten.Key{
		core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		core.ActionJump:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	}
	edgeBindings = map[core.Action][]ebiten.Key{
		core.ActionConfirm:       {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		core.ActionToggleMusic:   {ebiten.KeyM},
		core.ActionToggleEffects: {ebiten.KeyE},
		core.ActionQuit:          {ebiten.KeyEscape, ebiten.KeyQ},
	}
)

// readInput builds the input frame for one update.
func readInput(ks keyState) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range heldBindings {
		if anyKey(keys, ks.pressed) {
			in.Set(action)
		}
	}
	for action, keys := range edgeBindings {
		if anyKey(keys, ks.justPressed) {
			in.Set(action)
		}
	}
	return in
}

func anyKey(keys []ebiten.Key, fn func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}
