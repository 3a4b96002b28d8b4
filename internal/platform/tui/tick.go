// Package tui hosts racer games in a Bubble Tea terminal program.
// It owns the clock, keyboard and mouse input, drawing, and the menu,
// scoreboard, and SSH session flows around a game.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time a single frame may account for, so a
// stalled terminal does not jump the race clock.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time // When the tick fired
	Loop int64     // Tick loop that scheduled it
}

// loopIDs hands out tick loop identifiers. A model only follows ticks of
// its own loop, so a tick still in flight from a finished game is dropped.
var loopIDs atomic.Int64

func nextLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message for
// the given loop after one interval at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// frameDelta returns the wall-clock time between two ticks. The first
// tick has no predecessor and yields zero, which the game treats as one
// nominal tick.
func frameDelta(last, now time.Time) time.Duration {
	if last.IsZero() || !now.After(last) {
		return 0
	}
	return min(now.Sub(last), maxFrameDelta)
}
