package core

// Action is a semantic game action, abstracted from physical key presses.
// The key mapper in the platform layer translates keyboard input into
// actions; game logic never sees raw keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - walk up
	ActionDown           // S, J, Down arrow - walk down
	ActionLeft           // A, H, Left arrow - walk left
	ActionRight          // D, L, Right arrow - walk right
	ActionConfirm        // Enter, Space - confirm selection / interact
	ActionBack           // B, Escape - go back / close overlay
	ActionRestart        // R key - restart after a run ends
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame holds the set of actions triggered during one simulation tick.
// It is a small bitset, so the zero value is ready to use and copying a
// frame copies its contents.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	f.bits |= 1 << a
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.bits&(1<<a) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
