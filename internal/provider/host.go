//go:build !rp2040

// Host build: stand-ins for the board capabilities so the full pipeline
// runs in tests and the simulator without hardware.
package provider

import (
	"rclights-go/lights"
	"rclights-go/signal"
	"rclights-go/types"
)

var (
	_ signal.Sampler = (*ScriptSampler)(nil)
	_ lights.Channel = (*RecordChannel)(nil)
)

// CheckPreconditions always passes on the host.
func CheckPreconditions() error { return nil }

// ScriptSampler replays a scripted pulse sequence. Past the end it either
// loops or repeats the final value, like a transmitter holding its stick.
type ScriptSampler struct {
	Script []float32
	Loop   bool
	i      int
}

func (s *ScriptSampler) Init() error { return nil }

func (s *ScriptSampler) Measure() float32 {
	if len(s.Script) == 0 {
		return 0
	}
	if s.i >= len(s.Script) {
		if !s.Loop {
			return s.Script[len(s.Script)-1]
		}
		s.i = 0
	}
	v := s.Script[s.i]
	s.i++
	return v
}

// RecordChannel records duty writes and optionally reports them.
type RecordChannel struct {
	Name       types.LightName
	Configured bool
	Duty       uint8
	Writes     []uint8
	OnWrite    func(name types.LightName, duty uint8)
}

func (c *RecordChannel) Configure() error {
	c.Configured = true
	return nil
}

func (c *RecordChannel) SetDuty(percent uint8) {
	c.Duty = percent
	c.Writes = append(c.Writes, percent)
	if c.OnWrite != nil {
		c.OnWrite(c.Name, percent)
	}
}
