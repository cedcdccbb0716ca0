//go:build rp2040

// Package provider binds the signal and lights capabilities to the board.
// The rp2040 build drives real pins; host builds get the stand-ins in
// host.go.
package provider

import (
	"sync/atomic"
	"time"

	"rclights-go/config"
	"rclights-go/errcode"
	"rclights-go/lights"
	"rclights-go/signal"
	"rclights-go/x/mathx"
	"rclights-go/x/timex"

	"machine"
)

// Ensure the provider satisfies the capability contracts at compile time.
var (
	_ signal.Sampler = (*PulseCapture)(nil)
	_ lights.Channel = (*PWMChannel)(nil)
)

// CheckPreconditions verifies the clock and wiring assumptions baked into
// the calibration. A mismatch is a build/wiring error; callers abort.
func CheckPreconditions() error {
	if machine.CPUFrequency() != config.SysClockHz {
		return &errcode.E{C: errcode.BadClock, Op: "provider.CheckPreconditions", Msg: "expected stock 125 MHz system clock"}
	}
	if sliceForPin(config.InputPin) != config.InputSlice || chanForPin(config.InputPin) != config.InputChannel {
		return &errcode.E{C: errcode.PinMismatch, Op: "provider.CheckPreconditions", Msg: "input pin moved off slice 5 channel B"}
	}
	return nil
}

func sliceForPin(pin int) int { return (pin >> 1) & 7 }
func chanForPin(pin int) int  { return pin & 1 }

// -----------------------------------------------------------------------------
// Input capture
// -----------------------------------------------------------------------------

// PulseCapture measures the input channel's high-time from pin edges.
// The edge ISR stamps rise/fall times; Measure sleeps one input frame and
// reads the width of the last completed pulse. Timestamps are 32-bit
// microseconds with wraparound-safe subtraction.
type PulseCapture struct {
	pin      machine.Pin
	periodUs uint32
	riseUs   uint32
	widthUs  uint32
	seq      uint32 // completed-pulse counter
}

func NewSampler(prof config.Profile) *PulseCapture {
	return &PulseCapture{pin: machine.Pin(config.InputPin), periodUs: prof.PeriodUs()}
}

func (c *PulseCapture) Init() error {
	if err := CheckPreconditions(); err != nil {
		return err
	}
	c.pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	if err := c.pin.SetInterrupt(machine.PinRising|machine.PinFalling, c.edge); err != nil {
		return &errcode.E{C: errcode.PinMismatch, Op: "sampler.Init", Err: err}
	}
	return nil
}

func (c *PulseCapture) edge(p machine.Pin) {
	t := uint32(time.Now().UnixMicro())
	if p.Get() {
		atomic.StoreUint32(&c.riseUs, t)
		return
	}
	atomic.StoreUint32(&c.widthUs, mathx.Min(t-atomic.LoadUint32(&c.riseUs), c.periodUs))
	atomic.AddUint32(&c.seq, 1)
}

// Measure blocks for one input frame. When no pulse completed during the
// frame (line absent or stuck high) it saturates at the frame length,
// which the decoder clamps to the last bucket.
func (c *PulseCapture) Measure() float32 {
	before := atomic.LoadUint32(&c.seq)
	time.Sleep(time.Duration(c.periodUs) * time.Microsecond)
	if atomic.LoadUint32(&c.seq) == before {
		return float32(c.periodUs)
	}
	return float32(atomic.LoadUint32(&c.widthUs))
}

// -----------------------------------------------------------------------------
// PWM output channels
// -----------------------------------------------------------------------------

// Local interface to avoid depending on an unexported concrete type in
// machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice int) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// sliceFreqHz tracks the configured frequency per PWM slice. The two
// blinkers share a slice; a second Configure at a different frequency is
// a conflict, not a silent reconfiguration. Init runs on the sole thread,
// so no locking.
var sliceFreqHz [8]uint32

// PWMChannel drives one light pin at a duty-cycle percentage.
type PWMChannel struct {
	pin    machine.Pin
	ctrl   pwmCtrl
	chIdx  uint8
	slice  int
	freqHz uint32
	top    uint32
}

func NewPWMChannel(pin int, freqHz uint32) *PWMChannel {
	slice := sliceForPin(pin)
	return &PWMChannel{
		pin:    machine.Pin(pin),
		ctrl:   pwmGroupBySlice(slice),
		chIdx:  uint8(chanForPin(pin)),
		slice:  slice,
		freqHz: freqHz,
	}
}

func (p *PWMChannel) Configure() error {
	switch sliceFreqHz[p.slice] {
	case 0:
		// First user configures the controller period for this slice.
		if err := p.ctrl.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(p.freqHz)}); err != nil {
			return &errcode.E{C: errcode.NotConfigured, Op: "pwm.Configure", Err: err}
		}
		sliceFreqHz[p.slice] = p.freqHz
	case p.freqHz:
		// Slice already running at our frequency.
	default:
		return &errcode.E{C: errcode.SliceConflict, Op: "pwm.Configure", Msg: "shared slice frequency mismatch"}
	}

	p.pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	p.top = p.ctrl.Top()
	return nil
}

func (p *PWMChannel) SetDuty(percent uint8) {
	if p.top == 0 {
		return
	}
	pct := uint32(mathx.Min(percent, config.DutyMax))
	p.ctrl.Set(p.chIdx, mathx.RoundDiv(pct*p.top, 100))
}
