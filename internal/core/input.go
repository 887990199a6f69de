package core

// Action is a semantic input, decoupled from the physical key.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A
	ActionRight            // Right arrow, D
	ActionSoftDrop         // Down arrow, S (repeat to hold)
	ActionRotateCW         // E, X, Up
	ActionRotateCCW        // Q, Z
	ActionPause            // P, Esc
	ActionRestart          // R after game over
	ActionQuit             // Ctrl+C
)

// String returns a readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
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

// InputFrame collects the actions triggered during one frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear drops all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
