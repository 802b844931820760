package core

// Action represents a semantic game action, abstracted from physical key presses.
// Platforms translate keyboard state into actions once per tick; the game only
// ever sees the resulting InputFrame.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move batsman left
	ActionRight            // D, Right arrow - move batsman right
	ActionPowerShot        // Space - swing hard
	ActionDefensive        // S - defensive block
	ActionUp               // Up arrow - menu navigation
	ActionDown             // Down arrow - menu navigation
	ActionConfirm          // Enter - confirm menu selection
	ActionPause            // P - pause/unpause
	ActionRestart          // R - restart after game over
	ActionMenu             // Esc, M - back to menu
	ActionQuit             // Q, Ctrl+C - terminate
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
	case ActionPowerShot:
		return "PowerShot"
	case ActionDefensive:
		return "Defensive"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the pressed-state of every action for a single simulation tick.
// There is no queue: an action is either down this tick or it is not.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions pressed.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is pressed.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
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
