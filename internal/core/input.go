package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionLeft                 // Left arrow, A - run left (held)
	ActionRight                // Right arrow, D - run right (held)
	ActionJump                 // Space, W, Up - jump
	ActionConfirm              // Enter - start game from menu, leave result screens
	ActionToggleMusic          // M - toggle background music in menu
	ActionToggleEffects        // E - toggle sound effects in menu
	ActionQuit                 // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionToggleEffects:
		return "ToggleEffects"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Held keys (left/right) stay set for as long as the frontend considers
// them pressed; edge actions (jump, confirm) are set for a single frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Horizontal reports whether either run direction is held.
func (f InputFrame) Horizontal() bool {
	return f.Has(ActionLeft) || f.Has(ActionRight)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
