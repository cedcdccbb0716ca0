package lights

import (
	"rclights-go/errcode"
	"rclights-go/types"
)

// Applier unpacks a master configuration into its sub-fields and applies
// each light's rule. Every rule is evaluated every cycle and is stateless
// given the configuration; all memory lives in the Light state machines
// and the shared Oscillator.
//
// Front blue is not part of the decode path: it is switched on once at
// startup and never touched here.
type Applier struct {
	front *Light
	stop  *Light
	rev   *Light
	left  *Light
	right *Light
	osc   *Oscillator
}

// NewApplier resolves the five controlled lights from the registry.
func NewApplier(reg *Registry, osc *Oscillator) (*Applier, error) {
	a := &Applier{osc: osc}
	for _, want := range []struct {
		name types.LightName
		dst  **Light
	}{
		{types.FrontWhite, &a.front},
		{types.Stop, &a.stop},
		{types.Reverse, &a.rev},
		{types.LeftBlinker, &a.left},
		{types.RightBlinker, &a.right},
	} {
		l, ok := reg.Get(want.name)
		if !ok {
			return nil, &errcode.E{C: errcode.UnknownLight, Op: "lights.NewApplier", Msg: string(want.name)}
		}
		*want.dst = l
	}
	return a, nil
}

// Apply drives all controlled lights from one configuration.
func (a *Applier) Apply(cfg types.MasterConfig) {
	a.applyStop(cfg.Night(), cfg.Brake())
	a.applyReverse(cfg.Reverse())
	a.applyBlink(cfg.Blink())
	a.applyFrontWhite(cfg.Night(), cfg.HighBeam())
}

// Front white: hi-beam forces HI regardless of day/night; otherwise night
// gives the ON baseline.
func (a *Applier) applyFrontWhite(night, hiBeam bool) {
	if hiBeam {
		a.front.Set(types.LevelHi)
		return
	}
	if night {
		a.front.Set(types.LevelOn)
	} else {
		a.front.Set(types.LevelOff)
	}
}

// Stop: brake forces HI regardless of day/night. If a future decoder ever
// asserted brake and reverse together, brake wins here while the reverse
// rule still runs independently; the two lights are unrelated hardware.
func (a *Applier) applyStop(night, brake bool) {
	if brake {
		a.stop.Set(types.LevelHi)
		return
	}
	if night {
		a.stop.Set(types.LevelOn)
	} else {
		a.stop.Set(types.LevelOff)
	}
}

func (a *Applier) applyReverse(reverse bool) {
	if reverse {
		a.rev.Set(types.LevelOn)
	} else {
		a.rev.Set(types.LevelOff)
	}
}

func (a *Applier) applyBlink(mode types.BlinkMode) {
	switch mode {
	case types.BlinkOff:
		a.left.Set(types.LevelOff)
		a.right.Set(types.LevelOff)
	case types.BlinkLeft:
		a.blink(a.left)
		a.right.Set(types.LevelOff)
	case types.BlinkRight:
		a.left.Set(types.LevelOff)
		a.blink(a.right)
	default: // hazard
		a.blink(a.left, a.right)
	}
}

// blink drives lights from a single phase read so that multiple blinking
// lights within one cycle can never disagree.
func (a *Applier) blink(ls ...*Light) {
	on := a.osc.Phase()
	for _, l := range ls {
		if on {
			l.Set(types.LevelOn)
		} else if l.State() == types.LevelOn {
			l.Set(types.LevelOff)
		}
	}
}
