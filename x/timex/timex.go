package timex

import "time"

// NowUs returns the monotonic-ish microsecond counter used to pace the
// blink oscillator. On MCU builds time.Now is backed by the SoC timer.
func NowUs() int64 { return time.Now().UnixMicro() }

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}
