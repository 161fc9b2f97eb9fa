package core

// Pointer is the steering input for one frame. Input handlers overwrite
// it between frames; the simulation reads it exactly once per update, so
// there is a single writer and a single read point and no locking.
type Pointer struct {
	TargetX float64 // Desired crowd center in logical lane coordinates
	Down    bool    // Whether the pointer is currently pressed/tracked
}

// Action represents a semantic game action, abstracted from physical
// key presses or mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge steering target left
	ActionRight          // D, Right arrow - nudge steering target right
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
