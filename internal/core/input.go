package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate keys (or touches) into actions; the engine only sees actions.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, W, Up - jump
	ActionSlideStart        // S, Down - start sliding
	ActionSlideEnd          // synthesized by the host when the slide key is released
	ActionStart             // Enter, Space - start a run from the menu or game over screen
	ActionPause             // P - pause/unpause (host only)
	ActionMenu              // M, Escape - abandon the run and return to the menu
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionSlideStart:
		return "SlideStart"
	case ActionSlideEnd:
		return "SlideEnd"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the actions requested during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
