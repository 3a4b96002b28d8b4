package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// DefaultHoldTicks is how many frames a held key survives without a
// repeat event. It must bridge the terminal's initial key-repeat delay.
const DefaultHoldTicks = 24

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionNitrous, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message to a game action. Only a left
// button press counts, as a click.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionClick
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// HoldTracker turns the terminal's press-and-repeat key stream into
// press/release pairs. Terminals never report a key going up, so a held
// action is released once it has gone holdTicks frames without a repeat.
type HoldTracker struct {
	holdTicks int
	quiet     map[core.Action]int // frames since the last press or repeat
}

// NewHoldTracker creates a tracker. Non-positive holdTicks uses DefaultHoldTicks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		quiet:     make(map[core.Action]int),
	}
}

// Apply is called once per frame with the frame's buffered presses. It
// refreshes the actions pressed this frame and adds a release for every
// held action that has gone quiet.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a := range h.quiet {
		if frame.Has(a) {
			continue
		}
		h.quiet[a]++
		if h.quiet[a] >= h.holdTicks {
			frame.Release(a)
			delete(h.quiet, a)
		}
	}
	for a, pressed := range frame.Actions {
		if pressed && a.IsHeld() {
			h.quiet[a] = 0
		}
	}
}

// Held reports whether an action is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.quiet[a]
	return ok
}

// Reset forgets every held action without releasing it.
func (h *HoldTracker) Reset() {
	clear(h.quiet)
}
