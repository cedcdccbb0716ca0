package config

import "rclights-go/types"

// -----------------------------------------------------------------------------
// Board wiring (RP2040 / Pico). Changing a pin means re-checking its PWM
// slice and channel; init asserts the input mapping and aborts on mismatch.
// -----------------------------------------------------------------------------

const (
	SysClockHz = 125_000_000 // stock Pico clock, asserted at startup

	InputPin     = 27 // GP27, PWM slice 5 channel B
	InputSlice   = 5
	InputChannel = 1 // B
)

// OutputPins maps each vehicle light to its GP number.
var OutputPins = map[types.LightName]int{
	types.FrontWhite:   17,
	types.FrontBlue:    18,
	types.LeftBlinker:  20,
	types.RightBlinker: 21,
	types.Stop:         22,
	types.Reverse:      28,
}

// -----------------------------------------------------------------------------
// Signal and output constants. These are the shipped defaults; the
// per-transmitter numbers among them can be overridden by an embedded
// calibration profile (see profiles.go). Nothing is reconfigurable at
// runtime.
// -----------------------------------------------------------------------------

const (
	// Input PWM framing.
	InputFreqHz   = 62
	InputPeriodUs = 1_000_000 / InputFreqHz

	// Calibrated high-time range of the shipped transmitter.
	RangeMinUs float32 = 1019
	RangeMaxUs float32 = 1981

	// BucketCount is fixed by the decode fold: 3 reverse/brake/off states
	// crossed with 16 combinations of the upper four bits. Changing it
	// requires re-deriving the fold in package decode.
	BucketCount = 48

	// Smoothing.
	SmoothWindow = 4
	AvgSamples   = 5

	// Blink timing: 0.4 s half period, 1.25 Hz full rate.
	BlinkHalfPeriodUs = 400_000

	// Output duty levels, in percent of full scale.
	DutyMax uint8 = 100
	DutyOn  uint8 = 20
	DutyHi  uint8 = 100

	OutputPWMFreqHz uint32 = 1000
)

// DefaultTransmitter selects the embedded profile flashed by default.
const DefaultTransmitter = "silvia-s15"

// Profile carries the per-transmitter calibration numbers.
type Profile struct {
	Transmitter       string
	RangeMinUs        float32
	RangeMaxUs        float32
	InputFreqHz       uint32
	SmoothWindow      int
	BlinkHalfPeriodUs int64
	DutyOn            uint8
	DutyHi            uint8
}

// Default returns the compiled-in calibration.
func Default() Profile {
	return Profile{
		Transmitter:       DefaultTransmitter,
		RangeMinUs:        RangeMinUs,
		RangeMaxUs:        RangeMaxUs,
		InputFreqHz:       InputFreqHz,
		SmoothWindow:      SmoothWindow,
		BlinkHalfPeriodUs: BlinkHalfPeriodUs,
		DutyOn:            DutyOn,
		DutyHi:            DutyHi,
	}
}

// PeriodUs returns the expected input frame length for the profile.
func (p Profile) PeriodUs() uint32 {
	if p.InputFreqHz == 0 {
		return InputPeriodUs
	}
	return 1_000_000 / p.InputFreqHz
}
