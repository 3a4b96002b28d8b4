package racer

import "github.com/vovakirdan/tui-racer/internal/core"

// Intent is the player's velocity request, applied at the start of a tick.
type Intent struct {
	DX, DY float64
	Speed  float64 // Nitrous
}

// InputMapper turns press and release events into an Intent.
type InputMapper struct {
	steer    float64
	maxSpeed float64
	intent   Intent

	// Direction currently driving each axis, so releasing a key that was
	// overridden does not stop the car.
	steerX core.Action
	steerY core.Action
}

// NewInputMapper creates a mapper steering at the given speed.
func NewInputMapper(steer, maxSpeed float64) *InputMapper {
	return &InputMapper{steer: steer, maxSpeed: maxSpeed}
}

// Press applies a key press. Each nitrous press adds one unit of speed.
func (m *InputMapper) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		m.intent.DX = -m.steer
		m.steerX = a
	case core.ActionRight:
		m.intent.DX = m.steer
		m.steerX = a
	case core.ActionUp:
		m.intent.DY = m.steer
		m.steerY = a
	case core.ActionDown:
		m.intent.DY = -m.steer
		m.steerY = a
	case core.ActionNitrous:
		m.intent.Speed = min(m.intent.Speed+1, m.maxSpeed)
	}
}

// Release applies a key release.
func (m *InputMapper) Release(a core.Action) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		if m.steerX == a {
			m.intent.DX = 0
			m.steerX = core.ActionNone
		}
	case core.ActionUp, core.ActionDown:
		if m.steerY == a {
			m.intent.DY = 0
			m.steerY = core.ActionNone
		}
	case core.ActionNitrous:
		m.intent.Speed = 0
	}
}

// Intent returns the current intent.
func (m *InputMapper) Intent() Intent {
	return m.intent
}

// Reset drops all held keys.
func (m *InputMapper) Reset() {
	m.intent = Intent{}
	m.steerX = core.ActionNone
	m.steerY = core.ActionNone
}
