package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Space, W, Up arrow - flap upward
	ActionLeft             // A, Left arrow - bank left
	ActionRight            // D, Right arrow - bank right
	ActionRestart          // R, Enter - restart after game over
	ActionPause            // P, Escape - pause/unpause
	ActionAutopilot        // Tab - toggle the CPU pilot
	ActionHelp             // ? - toggle the full help view
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionAutopilot:
		return "Autopilot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsControl reports whether the action is part of the held-control snapshot
// rather than a one-shot command.
func (a Action) IsControl() bool {
	return a == ActionUp || a == ActionLeft || a == ActionRight
}

// InputFrame is the control snapshot for one tick. The host samples it once
// per frame; the game only reads it.
type InputFrame struct {
	Up    bool
	Left  bool
	Right bool
}

// Has returns true if the given control is held in this frame.
func (f InputFrame) Has(a Action) bool {
	switch a {
	case ActionUp:
		return f.Up
	case ActionLeft:
		return f.Left
	case ActionRight:
		return f.Right
	}
	return false
}

// Set marks a control as held. Non-control actions are ignored.
func (f *InputFrame) Set(a Action) {
	switch a {
	case ActionUp:
		f.Up = true
	case ActionLeft:
		f.Left = true
	case ActionRight:
		f.Right = true
	}
}

// IsZero returns true when no control is held.
func (f InputFrame) IsZero() bool {
	return !f.Up && !f.Left && !f.Right
}
