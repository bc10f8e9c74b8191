package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // Up arrow - move the pointer up
	ActionDown                  // Down arrow - move the pointer down
	ActionLeft                  // Left arrow - move the pointer left
	ActionRight                 // Right arrow - move the pointer right
	ActionLevelUp               // [ or - : select the parent block
	ActionLevelDown             // ] or + : select a child block
	ActionRotateCW              // R, left click
	ActionRotateCCW             // E, right click
	ActionSwapHorizontal        // H
	ActionSwapVertical          // V
	ActionSmash                 // X
	ActionConfirm               // Enter - confirm selection in menu
	ActionBack                  // B, Escape - go back to menu
	ActionRestart               // N key - restart game
	ActionQuit                  // Q, Ctrl+C - exit game/session
	ActionPause                 // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLevelUp:
		return "LevelUp"
	case ActionLevelDown:
		return "LevelDown"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSwapHorizontal:
		return "SwapHorizontal"
	case ActionSwapVertical:
		return "SwapVertical"
	case ActionSmash:
		return "Smash"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse position in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the last mouse position seen this frame, if any.
	Pointer *Pointer
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

// SetPointer records the mouse position for this frame.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = &Pointer{X: x, Y: y}
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}
