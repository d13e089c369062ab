package core

// Action represents a semantic game action, abstracted from physical key
// presses and pointer clicks.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W, left click - thrust the rocket
	ActionStart           // Enter, S - leave the title screen
	ActionRestart         // Enter, R - play again after game over
	ActionMenu            // M, B, Escape - back to the title screen after game over
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionStart:
		return "Start"
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

// InputFrame collects the actions triggered between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}
