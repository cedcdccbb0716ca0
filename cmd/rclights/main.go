//go:build rp2040

// Command rclights: RC light controller firmware for RP2040/Pico.
//
// Build/flash (TinyGo):
//   tinygo flash -target pico ./cmd/rclights
//
// Wiring assumptions (see package config):
// - Receiver channel on GP27 (PWM slice 5 channel B).
// - Light outputs: front white GP17, front blue GP18, left blinkers GP20,
//   right blinkers GP21, stop GP22, reverse GP28.
package main

import (
	"context"
	"time"

	"rclights-go/config"
	"rclights-go/controller"
	"rclights-go/decode"
	"rclights-go/internal/provider"
	"rclights-go/lights"
	"rclights-go/signal"
	"rclights-go/types"
	"rclights-go/x/timex"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("rclights: boot")

	prof, err := config.Load(config.DefaultTransmitter)
	if err != nil {
		fatal(err)
	}

	reg := lights.NewRegistry()
	for name, pin := range config.OutputPins {
		ch := provider.NewPWMChannel(pin, config.OutputPWMFreqHz)
		if err := reg.Add(lights.New(name, ch, prof.DutyOn, prof.DutyHi)); err != nil {
			fatal(err)
		}
	}
	if err := reg.Init(); err != nil {
		fatal(err)
	}

	// Front blue has no controller: on for the life of the process.
	if blue, ok := reg.Get(types.FrontBlue); ok {
		blue.Set(types.LevelOn)
	}

	sampler := provider.NewSampler(prof)
	if err := sampler.Init(); err != nil {
		fatal(err)
	}

	osc := lights.NewOscillator(timex.NowUs, prof.BlinkHalfPeriodUs)
	applier, err := lights.NewApplier(reg, osc)
	if err != nil {
		fatal(err)
	}

	ctrl := controller.New(
		sampler,
		signal.NewDebounce(prof.SmoothWindow),
		decode.New(prof.RangeMinUs, prof.RangeMaxUs),
		applier,
	)
	println("rclights: running")
	ctrl.Run(context.Background())
}

// fatal reports a startup precondition failure and halts: the controller
// cannot run safely on wrong wiring or clocks.
func fatal(err error) {
	println("rclights: fatal:", err.Error())
	panic(err)
}
