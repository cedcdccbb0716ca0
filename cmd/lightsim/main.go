// Command lightsim: host-side dry run of the control pipeline.
//
//	go run ./cmd/lightsim
//
// Feeds a scripted flight of stick positions through the real filter,
// decoder and light rules and prints every hardware write, so decode and
// debounce behavior can be eyeballed without a flashed board.
package main

import (
	"fmt"

	"rclights-go/config"
	"rclights-go/controller"
	"rclights-go/decode"
	"rclights-go/internal/provider"
	"rclights-go/lights"
	"rclights-go/signal"
	"rclights-go/types"
)

// scene is one held stick position.
type scene struct {
	label  string
	bucket int
	cycles int
}

func main() {
	prof := config.Default()
	dec := decode.New(prof.RangeMinUs, prof.RangeMaxUs)

	scenes := []scene{
		{"day, everything off", 0, 6},
		{"night baseline", 24, 6},
		{"night + left blink", 27, 10},
		{"night + brake", 25, 6},
		{"reverse", 2, 6},
		{"hazard + hi-beam + night", 45, 16},
		{"noise burst, must not move", 1, 2},
		{"back to day", 0, 6},
	}

	var script []float32
	for _, sc := range scenes {
		hi := prof.RangeMinUs + float32(sc.bucket)*dec.BucketSizeUs()
		for i := 0; i < sc.cycles; i++ {
			script = append(script, hi)
		}
	}

	reg := lights.NewRegistry()
	for _, name := range []types.LightName{
		types.FrontWhite, types.FrontBlue, types.LeftBlinker,
		types.RightBlinker, types.Stop, types.Reverse,
	} {
		ch := &provider.RecordChannel{Name: name, OnWrite: func(n types.LightName, duty uint8) {
			fmt.Printf("    %-13s -> duty %3d%%\n", n, duty)
		}}
		if err := reg.Add(lights.New(name, ch, prof.DutyOn, prof.DutyHi)); err != nil {
			panic(err)
		}
	}
	if err := reg.Init(); err != nil {
		panic(err)
	}
	if blue, ok := reg.Get(types.FrontBlue); ok {
		blue.Set(types.LevelOn)
	}

	// Virtual clock: one input frame per control cycle.
	var nowUs int64
	osc := lights.NewOscillator(func() int64 { return nowUs }, prof.BlinkHalfPeriodUs)
	applier, err := lights.NewApplier(reg, osc)
	if err != nil {
		panic(err)
	}

	ctrl := controller.New(
		&provider.ScriptSampler{Script: script},
		signal.NewDebounce(prof.SmoothWindow),
		dec,
		applier,
	)

	fmt.Printf("lightsim: %d cycles, frame %d us, bucket %.3f us\n",
		len(script), prof.PeriodUs(), dec.BucketSizeUs())

	cycle := 0
	last := types.MasterConfig(0xff)
	for _, sc := range scenes {
		fmt.Printf("== %s (bucket %d)\n", sc.label, sc.bucket)
		for i := 0; i < sc.cycles; i++ {
			cfg := ctrl.Step()
			if cfg != last {
				fmt.Printf("  cycle %3d: config %06b  brake=%v reverse=%v blink=%s hibeam=%v night=%v\n",
					cycle, uint8(cfg), cfg.Brake(), cfg.Reverse(), cfg.Blink(), cfg.HighBeam(), cfg.Night())
				last = cfg
			}
			nowUs += int64(prof.PeriodUs())
			cycle++
		}
	}
}
