package signal

// Filter turns raw pulse readings into a stable duration. Exactly one
// filter instance feeds the control loop; the choice between strategies is
// made at build time in the entrypoint.
type Filter interface {
	Smooth(raw float32) float32
}

// -----------------------------------------------------------------------------
// Debounce: majority-of-window settle
// -----------------------------------------------------------------------------

// Debounce holds its accepted value until the last `window` raw readings
// are pairwise identical, then jumps to the new value. A single noisy
// sample can never move the output; a sustained run always does. This is
// deliberate latency-for-stability, not an average.
type Debounce struct {
	samples  []float32
	cur      int
	accepted float32
}

// NewDebounce returns a debounce filter over the given window size.
// The accepted value starts at 0, so the output cannot move until the
// buffer has been uniformly filled once (startup inertia).
func NewDebounce(window int) *Debounce {
	if window < 1 {
		window = 1
	}
	return &Debounce{samples: make([]float32, window)}
}

func (d *Debounce) Smooth(raw float32) float32 {
	d.samples[d.cur] = raw
	d.cur = (d.cur + 1) % len(d.samples)

	if raw != d.accepted {
		all := true
		for _, s := range d.samples {
			if s != raw {
				all = false
				break
			}
		}
		if all {
			d.accepted = raw
		}
	}
	return d.accepted
}

// Accepted returns the current settled value without pushing a sample.
func (d *Debounce) Accepted() float32 { return d.accepted }

// -----------------------------------------------------------------------------
// RingAverage: running mean over the last N samples
// -----------------------------------------------------------------------------

// RingAverage keeps a running sum of the last n readings, each stored
// pre-divided by n. It tracks slow drift instead of settling, which makes
// it the wrong default for a quantized control channel, but it is kept as
// a swap-in for analog-style inputs.
type RingAverage struct {
	samples []float32 // n+1 slots: one extra holds the value being evicted
	cur     int
	avg     float32
}

func NewRingAverage(n int) *RingAverage {
	if n < 1 {
		n = 1
	}
	return &RingAverage{samples: make([]float32, n+1)}
}

func (a *RingAverage) Smooth(raw float32) float32 {
	n := len(a.samples) - 1
	oldest := (a.cur + 1) % len(a.samples)

	a.samples[a.cur] = raw / float32(n)
	a.avg += a.samples[a.cur] - a.samples[oldest]
	a.cur = oldest

	return a.avg
}
