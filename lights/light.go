// Package lights owns the per-light state machines and the rules that
// drive them from a master configuration.
package lights

import (
	"rclights-go/errcode"
	"rclights-go/types"
)

// Channel drives one physical light output. Implementations live in the
// hardware provider; SetDuty applies a duty-cycle percentage and may be
// called redundantly, though the Light above it never does.
type Channel interface {
	Configure() error
	SetDuty(percent uint8)
}

// Light is the write-on-change state machine for one physical light.
// A transition writes hardware only when the requested level differs from
// the current one; redundant Set calls are free. That guarantee is what
// keeps the output PWM free of flicker, so it must hold at this layer even
// when the Channel underneath would tolerate redundant writes.
type Light struct {
	name   types.LightName
	ch     Channel
	state  types.Level
	ready  bool
	dutyOn uint8
	dutyHi uint8
}

// New wires a light to its output channel. dutyOn/dutyHi are the duty
// percentages for the ON baseline and HI levels.
func New(name types.LightName, ch Channel, dutyOn, dutyHi uint8) *Light {
	return &Light{name: name, ch: ch, dutyOn: dutyOn, dutyHi: dutyHi}
}

// Init configures the output channel and drives it to a known OFF level.
func (l *Light) Init() error {
	if err := l.ch.Configure(); err != nil {
		return &errcode.E{C: errcode.Of(err), Op: "light.Init", Msg: string(l.name), Err: err}
	}
	l.ch.SetDuty(0)
	l.state = types.LevelOff
	l.ready = true
	return nil
}

// Set transitions the light to the requested level, writing hardware only
// on change.
func (l *Light) Set(level types.Level) {
	if !l.ready || l.state == level {
		return
	}
	l.ch.SetDuty(l.duty(level))
	l.state = level
}

func (l *Light) duty(level types.Level) uint8 {
	switch level {
	case types.LevelOn:
		return l.dutyOn
	case types.LevelHi:
		return l.dutyHi
	default:
		return 0
	}
}

func (l *Light) Name() types.LightName { return l.name }
func (l *Light) State() types.Level    { return l.state }
