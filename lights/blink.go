package lights

// Oscillator is the shared blink timer: one deadline, one phase. Both
// blinker lights read the same phase within a cycle, which is what keeps
// hazard mode synchronous.
//
// The oscillator advances lazily: nothing moves while no light is
// blinking, and the first blinking cycle after a pause starts a fresh
// half-period from "now".
type Oscillator struct {
	now          func() int64 // monotonic microseconds
	halfPeriodUs int64
	deadlineUs   int64
	on           bool
}

// NewOscillator builds a blink timer over the given clock. The clock is
// injected so tests can drive phase changes deterministically.
func NewOscillator(now func() int64, halfPeriodUs int64) *Oscillator {
	if halfPeriodUs < 1 {
		halfPeriodUs = 1
	}
	return &Oscillator{now: now, halfPeriodUs: halfPeriodUs}
}

// Phase flips the stored phase if the deadline has passed, then reports
// whether blinking lights should currently be lit.
func (o *Oscillator) Phase() bool {
	t := o.now()
	if o.deadlineUs < t {
		o.deadlineUs = t + o.halfPeriodUs
		o.on = !o.on
	}
	return o.on
}
