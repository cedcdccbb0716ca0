package lights

import (
	"testing"

	"rclights-go/errcode"
	"rclights-go/types"
)

type rig struct {
	reg *Registry
	app *Applier
	chs map[types.LightName]*fakeChannel
	now int64
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{reg: NewRegistry(), chs: map[types.LightName]*fakeChannel{}}
	for _, name := range []types.LightName{
		types.FrontWhite, types.Stop, types.Reverse,
		types.LeftBlinker, types.RightBlinker,
	} {
		ch := &fakeChannel{}
		r.chs[name] = ch
		if err := r.reg.Add(New(name, ch, 20, 100)); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	if err := r.reg.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	osc := NewOscillator(func() int64 { return r.now }, 400_000)
	app, err := NewApplier(r.reg, osc)
	if err != nil {
		t.Fatalf("applier: %v", err)
	}
	r.app = app
	return r
}

func (r *rig) state(t *testing.T, name types.LightName) types.Level {
	t.Helper()
	l, ok := r.reg.Get(name)
	if !ok {
		t.Fatalf("light %s missing", name)
	}
	return l.State()
}

// cfg assembles a master configuration from its sub-fields.
func cfg(brake, reverse bool, blink types.BlinkMode, hiBeam, night bool) types.MasterConfig {
	var c types.MasterConfig
	if brake {
		c |= 1
	}
	if reverse {
		c |= 1 << 1
	}
	c |= types.MasterConfig(blink) << 2
	if hiBeam {
		c |= 1 << 4
	}
	if night {
		c |= 1 << 5
	}
	return c
}

func TestApply_FrontWhitePrecedence(t *testing.T) {
	r := newRig(t)

	// Hi-beam overrides day/night even when day/night is off.
	r.app.Apply(cfg(false, false, types.BlinkOff, true, false))
	if got := r.state(t, types.FrontWhite); got != types.LevelHi {
		t.Fatalf("hi-beam: front white = %v, want hi", got)
	}

	r.app.Apply(cfg(false, false, types.BlinkOff, false, true))
	if got := r.state(t, types.FrontWhite); got != types.LevelOn {
		t.Fatalf("night: front white = %v, want on", got)
	}

	r.app.Apply(cfg(false, false, types.BlinkOff, false, false))
	if got := r.state(t, types.FrontWhite); got != types.LevelOff {
		t.Fatalf("day: front white = %v, want off", got)
	}
}

func TestApply_StopBrakeOverridesDayNight(t *testing.T) {
	r := newRig(t)

	for _, night := range []bool{false, true} {
		r.app.Apply(cfg(true, false, types.BlinkOff, false, night))
		if got := r.state(t, types.Stop); got != types.LevelHi {
			t.Fatalf("brake (night=%v): stop = %v, want hi", night, got)
		}
	}

	r.app.Apply(cfg(false, false, types.BlinkOff, false, true))
	if got := r.state(t, types.Stop); got != types.LevelOn {
		t.Fatalf("night: stop = %v, want on", got)
	}
	r.app.Apply(cfg(false, false, types.BlinkOff, false, false))
	if got := r.state(t, types.Stop); got != types.LevelOff {
		t.Fatalf("day: stop = %v, want off", got)
	}
}

func TestApply_Reverse(t *testing.T) {
	r := newRig(t)

	r.app.Apply(cfg(false, true, types.BlinkOff, false, false))
	if got := r.state(t, types.Reverse); got != types.LevelOn {
		t.Fatalf("reverse = %v, want on", got)
	}
	r.app.Apply(cfg(false, false, types.BlinkOff, false, false))
	if got := r.state(t, types.Reverse); got != types.LevelOff {
		t.Fatalf("reverse = %v, want off", got)
	}
}

func TestApply_BrakeAndReverseTogether_BrakeWins(t *testing.T) {
	r := newRig(t)

	// Unreachable from the decoder. Brake takes precedence for the stop
	// light; reverse still runs its own rule.
	r.app.Apply(cfg(true, true, types.BlinkOff, false, false))
	if got := r.state(t, types.Stop); got != types.LevelHi {
		t.Fatalf("stop = %v, want hi", got)
	}
	if got := r.state(t, types.Reverse); got != types.LevelOn {
		t.Fatalf("reverse = %v, want on", got)
	}
}

func TestApply_BlinkLeftOnly(t *testing.T) {
	r := newRig(t)

	r.now = 1 // phase flips on at first read
	r.app.Apply(cfg(false, false, types.BlinkLeft, false, false))
	if got := r.state(t, types.LeftBlinker); got != types.LevelOn {
		t.Fatalf("left = %v, want on", got)
	}
	if got := r.state(t, types.RightBlinker); got != types.LevelOff {
		t.Fatalf("right = %v, want off", got)
	}

	r.now = 400_002 // past the deadline: phase off
	r.app.Apply(cfg(false, false, types.BlinkLeft, false, false))
	if got := r.state(t, types.LeftBlinker); got != types.LevelOff {
		t.Fatalf("left after phase flip = %v, want off", got)
	}
}

func TestApply_BlinkRightOnly(t *testing.T) {
	r := newRig(t)

	r.now = 1
	r.app.Apply(cfg(false, false, types.BlinkRight, false, false))
	if got := r.state(t, types.RightBlinker); got != types.LevelOn {
		t.Fatalf("right = %v, want on", got)
	}
	if got := r.state(t, types.LeftBlinker); got != types.LevelOff {
		t.Fatalf("left = %v, want off", got)
	}
}

func TestApply_HazardStaysSynchronous(t *testing.T) {
	r := newRig(t)
	hazard := cfg(false, false, types.BlinkHazard, false, false)

	// Sample across several half periods: the two blinkers must agree at
	// every instant, including the cycles where the phase flips.
	for _, now := range []int64{1, 200_000, 400_002, 600_000, 800_003, 1_200_005} {
		r.now = now
		r.app.Apply(hazard)
		l := r.state(t, types.LeftBlinker)
		rt := r.state(t, types.RightBlinker)
		if l != rt {
			t.Fatalf("t=%d: left=%v right=%v, hazard out of phase", now, l, rt)
		}
	}
}

func TestApply_BlinkModeSwitchClearsOtherSide(t *testing.T) {
	r := newRig(t)

	r.now = 1
	r.app.Apply(cfg(false, false, types.BlinkLeft, false, false))
	r.app.Apply(cfg(false, false, types.BlinkRight, false, false))
	if got := r.state(t, types.LeftBlinker); got != types.LevelOff {
		t.Fatalf("left after switch to right = %v, want off", got)
	}

	r.app.Apply(cfg(false, false, types.BlinkOff, false, false))
	if r.state(t, types.LeftBlinker) != types.LevelOff || r.state(t, types.RightBlinker) != types.LevelOff {
		t.Fatal("blink off must park both blinkers off")
	}
}

func TestApply_BlinkerWriteOnlyOnPhaseChange(t *testing.T) {
	r := newRig(t)
	left := r.chs[types.LeftBlinker]
	left.writes = nil

	r.now = 1
	blink := cfg(false, false, types.BlinkLeft, false, false)
	r.app.Apply(blink) // on
	r.app.Apply(blink) // still on: no extra write
	r.now = 300_000
	r.app.Apply(blink)
	if len(left.writes) != 1 {
		t.Fatalf("in-phase cycles wrote hardware: %v", left.writes)
	}
	r.now = 400_002
	r.app.Apply(blink) // off
	if len(left.writes) != 2 {
		t.Fatalf("want 2 writes after one full flip, got %v", left.writes)
	}
}

func TestNewApplier_MissingLight(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Add(New(types.FrontWhite, &fakeChannel{}, 20, 100))
	_, err := NewApplier(reg, NewOscillator(func() int64 { return 0 }, 1))
	if errcode.Of(err) != errcode.UnknownLight {
		t.Fatalf("err = %v, want %v", err, errcode.UnknownLight)
	}
}
