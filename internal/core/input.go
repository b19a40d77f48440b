package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // W, Up arrow - menu navigation
	ActionDown                 // S, Down arrow - menu navigation
	ActionJump                 // Up, W - tap flap (charge start and release in one frame)
	ActionChargeStart          // Space, mouse press - begin charging a flap
	ActionChargeRelease        // Space again, mouse release - release the charged flap
	ActionConfirm              // Enter - start a run / confirm selection
	ActionBack                 // B - go back to menu
	ActionRestart              // R key - restart game after game over
	ActionQuit                 // Q, Ctrl+C - exit game/session
	ActionPause                // P, Escape - pause/unpause game

	actionCount
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
	case ActionJump:
		return "Jump"
	case ActionChargeStart:
		return "ChargeStart"
	case ActionChargeRelease:
		return "ChargeRelease"
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

// InputFrame is the set of actions latched for one simulation tick.
// It is a value type: copies never share state.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the latched actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
