package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer forward
	ActionDown           // S, Down arrow - steer back
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionNitrous        // Space - nitrous boost while held
	ActionClick          // Left mouse button - start / restart
	ActionConfirm        // Enter - keyboard alternative to a click
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionNitrous:
		return "Nitrous"
	case ActionClick:
		return "Click"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action models a key that is held down
// (and therefore produces a release) rather than a one-shot trigger.
func (a Action) IsHeld() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionNitrous:
		return true
	}
	return false
}

// InputFrame represents the input collected for a single simulation tick.
type InputFrame struct {
	// Actions holds actions pressed (or repeated) during this frame.
	Actions map[Action]bool

	// Releases holds held actions that were let go during this frame.
	Releases map[Action]bool

	// Delta is the wall-clock time since the previous frame.
	// Zero means the game should assume one nominal tick.
	Delta time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Releases: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Release marks a held action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Releases == nil {
		f.Releases = make(map[Action]bool)
	}
	f.Releases[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Released returns true if the given action was released this frame.
func (f InputFrame) Released(a Action) bool {
	return f.Releases[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Releases {
		delete(f.Releases, k)
	}
	f.Delta = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Releases {
		clone.Releases[k] = v
	}
	clone.Delta = f.Delta
	return clone
}
