package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the platform to bind keys, mouse buttons and touch to the same intent.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, K, mouse press - flap
	ActionRestart        // R key - start a fresh session after a collision
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
