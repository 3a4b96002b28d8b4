package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-racer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNitrous, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('a'), &frame) {
		t.Error("a should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("a should set Left in the frame")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be recorded as a game action")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		action core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionClick},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapMouse(tt.msg); got != tt.action {
				t.Errorf("MapMouse() = %v, expected %v", got, tt.action)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.action)
		}
	}
}

// step runs one frame through the tracker, optionally pressing actions.
func step(h *HoldTracker, pressed ...core.Action) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range pressed {
		frame.Set(a)
	}
	h.Apply(&frame)
	return frame
}

func TestHoldTrackerReleasesAfterQuietFrames(t *testing.T) {
	h := NewHoldTracker(3)

	step(h, core.ActionLeft)
	if !h.Held(core.ActionLeft) {
		t.Fatal("Left should be held after a press")
	}

	// Two quiet frames keep it held
	for i := range 2 {
		if f := step(h); f.Released(core.ActionLeft) {
			t.Fatalf("released too early on quiet frame %d", i+1)
		}
	}

	f := step(h)
	if !f.Released(core.ActionLeft) {
		t.Error("Left should be released on the third quiet frame")
	}
	if h.Held(core.ActionLeft) {
		t.Error("Left should no longer be held")
	}

	// Nothing left to release
	if f := step(h); len(f.Releases) != 0 {
		t.Errorf("unexpected releases %v", f.Releases)
	}
}

func TestHoldTrackerRepeatKeepsKeyHeld(t *testing.T) {
	h := NewHoldTracker(3)

	// A repeat every other frame never lets the key go quiet for long
	for i := range 20 {
		var f core.InputFrame
		if i%2 == 0 {
			f = step(h, core.ActionNitrous)
		} else {
			f = step(h)
		}
		if f.Released(core.ActionNitrous) {
			t.Fatalf("repeated key released on frame %d", i)
		}
	}
}

func TestHoldTrackerIgnoresOneShotActions(t *testing.T) {
	h := NewHoldTracker(1)

	step(h, core.ActionConfirm, core.ActionClick)
	if h.Held(core.ActionConfirm) || h.Held(core.ActionClick) {
		t.Error("one-shot actions should never be held")
	}
	if f := step(h); len(f.Releases) != 0 {
		t.Errorf("one-shot actions should never be released, got %v", f.Releases)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(2)
	step(h, core.ActionUp, core.ActionRight)
	h.Reset()

	if h.Held(core.ActionUp) || h.Held(core.ActionRight) {
		t.Error("Reset should forget held actions")
	}
	if f := step(h); len(f.Releases) != 0 {
		t.Errorf("Reset should not produce releases, got %v", f.Releases)
	}
}

func TestHoldTrackerDefault(t *testing.T) {
	if h := NewHoldTracker(0); h.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, expected %d", h.holdTicks, DefaultHoldTicks)
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick", time.Time{}, base, 0},
		{"normal", base, base.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"stall capped", base, base.Add(3 * time.Second), maxFrameDelta},
		{"clock went back", base, base.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.last, tt.now); got != tt.want {
				t.Errorf("frameDelta() = %v, expected %v", got, tt.want)
			}
		})
	}
}
