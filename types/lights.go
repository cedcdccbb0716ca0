package types

// ------------------------
// Light identity & levels
// ------------------------

// LightName identifies one physical light on the vehicle.
type LightName string

const (
	FrontWhite   LightName = "front_white"
	FrontBlue    LightName = "front_blue"
	LeftBlinker  LightName = "left_blinker"
	RightBlinker LightName = "right_blinker"
	Stop         LightName = "stop"
	Reverse      LightName = "reverse"
)

// Level is the drive level of a physical light.
type Level uint8

const (
	LevelOff Level = iota
	LevelOn        // baseline glow (partial duty)
	LevelHi        // full duty
)

func (l Level) String() string {
	switch l {
	case LevelOn:
		return "on"
	case LevelHi:
		return "hi"
	default:
		return "off"
	}
}

// ------------------------
// Master light configuration
// ------------------------

// BlinkMode is the two-bit blinker sub-field.
type BlinkMode uint8

const (
	BlinkOff BlinkMode = iota
	BlinkLeft
	BlinkRight
	BlinkHazard
)

func (m BlinkMode) String() string {
	switch m {
	case BlinkLeft:
		return "left"
	case BlinkRight:
		return "right"
	case BlinkHazard:
		return "hazard"
	default:
		return "off"
	}
}

// MasterConfig is the bit-packed combined target state of all lights for
// one control cycle.
//
// bit 0    brake    stop light at HI
// bit 1    reverse  reverse light on
// bits 2-3 blink    0=off 1=left 2=right 3=hazard
// bit 4    hi-beam  front white at HI
// bit 5    night    front white + stop at baseline ON
//
// The decoder never emits brake and reverse together; the reverse/brake/off
// dimension is a three-valued choice spread across bits 0-1.
type MasterConfig uint8

func (c MasterConfig) Brake() bool      { return c&1 != 0 }
func (c MasterConfig) Reverse() bool    { return (c>>1)&1 != 0 }
func (c MasterConfig) Blink() BlinkMode { return BlinkMode((c >> 2) & 3) }
func (c MasterConfig) HighBeam() bool   { return (c>>4)&1 != 0 }
func (c MasterConfig) Night() bool      { return (c>>5)&1 != 0 }
