//go:build rp2040

package provider

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"

	"rclights-go/config"
	"rclights-go/lights"
	"rclights-go/x/mathx"
)

// LightBar drives a WS2812 blinker pod as a lights.Channel: solid amber
// whose brightness follows the duty level. Builds with addressable strip
// indicators swap this in for a plain PWM blinker channel; the state
// machines above never know the difference.
type LightBar struct {
	ws   *piolib.WS2812B
	r, g uint8 // full-scale color
}

var _ lights.Channel = (*LightBar)(nil)

func NewLightBar(pin machine.Pin) (*LightBar, error) {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		return nil, err
	}
	ws, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return nil, err
	}
	return &LightBar{ws: ws, r: 0xff, g: 0x60}, nil
}

// Configure is a no-op: the PIO program is loaded at construction.
func (b *LightBar) Configure() error { return nil }

func (b *LightBar) SetDuty(percent uint8) {
	pct := uint32(mathx.Min(percent, config.DutyMax))
	b.ws.SetRGB(uint8(uint32(b.r)*pct/100), uint8(uint32(b.g)*pct/100), 0)
}
