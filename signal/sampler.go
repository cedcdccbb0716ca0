package signal

// Sampler measures the input channel, one frame at a time.
type Sampler interface {
	// Init configures the capture hardware once at startup. It must verify
	// the clock and pin-mapping preconditions and fail with an errcode on
	// mismatch; the caller treats that as fatal.
	Init() error

	// Measure blocks for at least one full input period and returns the
	// high-time of the most recent complete pulse, in microseconds.
	// The value saturates at one frame length when the line is absent or
	// stuck high; callers must tolerate out-of-range readings.
	Measure() float32
}
