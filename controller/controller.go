// Package controller glues sampler, filter, decoder and light rules into
// the drive loop.
package controller

import (
	"context"

	"rclights-go/decode"
	"rclights-go/lights"
	"rclights-go/signal"
	"rclights-go/types"
)

// Controller runs the control cycle: sample, smooth, decode, apply.
// It owns no goroutines; Run executes on the caller's (sole) thread and
// the sampler's blocking measure is the loop's only suspension point.
type Controller struct {
	sampler signal.Sampler
	filter  signal.Filter
	dec     decode.Decoder
	applier *lights.Applier
}

func New(sampler signal.Sampler, filter signal.Filter, dec decode.Decoder, applier *lights.Applier) *Controller {
	return &Controller{sampler: sampler, filter: filter, dec: dec, applier: applier}
}

// Step runs one control cycle and returns the configuration it applied.
func (c *Controller) Step() types.MasterConfig {
	hiUs := c.filter.Smooth(c.sampler.Measure())
	cfg := c.dec.Decode(hiUs)
	c.applier.Apply(cfg)
	return cfg
}

// Run cycles until ctx is cancelled. On the vehicle the context never
// ends and the loop runs to power-off; cancellation exists for tests and
// the simulator.
func (c *Controller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.Step()
	}
}
