package signal

import "testing"

func TestDebounce_StartupInertia(t *testing.T) {
	d := NewDebounce(4)
	// Fewer pushes than the window: zero-initialized slots count as
	// mismatches, so the accepted value must stay put.
	for i, raw := range []float32{1500, 1500, 1500} {
		if got := d.Smooth(raw); got != 0 {
			t.Fatalf("sample %d: accepted %v, want 0", i, got)
		}
	}
}

func TestDebounce_ConvergesOnFullWindow(t *testing.T) {
	d := NewDebounce(4)
	for i := 0; i < 3; i++ {
		if got := d.Smooth(1500); got != 0 {
			t.Fatalf("moved early on sample %d: %v", i, got)
		}
	}
	if got := d.Smooth(1500); got != 1500 {
		t.Fatalf("4th identical sample: accepted %v, want 1500", got)
	}
	if got := d.Accepted(); got != 1500 {
		t.Fatalf("Accepted() = %v, want 1500", got)
	}
}

func TestDebounce_RejectsShortRuns(t *testing.T) {
	d := NewDebounce(4)
	for i := 0; i < 4; i++ {
		d.Smooth(1500)
	}
	// Three agreeing samples interrupted by noise: never enough for a
	// full window, output must hold 1500 throughout.
	seq := []float32{1660, 1660, 1660, 1500, 1660, 1660, 1500, 1660}
	for i, raw := range seq {
		if got := d.Smooth(raw); got != 1500 {
			t.Fatalf("sample %d (%v): accepted %v, want 1500", i, raw, got)
		}
	}
}

func TestDebounce_SpikeThenRecover(t *testing.T) {
	d := NewDebounce(4)
	for i := 0; i < 4; i++ {
		d.Smooth(1500)
	}
	if got := d.Smooth(2400); got != 1500 {
		t.Fatalf("single spike moved output to %v", got)
	}
	// The spike poisoned one slot; three more agreeing samples refill it.
	d.Smooth(1660)
	d.Smooth(1660)
	d.Smooth(1660)
	if got := d.Smooth(1660); got != 1660 {
		t.Fatalf("accepted %v after full agreeing window, want 1660", got)
	}
}

func TestDebounce_RepeatOfAcceptedIsStable(t *testing.T) {
	d := NewDebounce(4)
	for i := 0; i < 4; i++ {
		d.Smooth(1500)
	}
	// Raw equal to the accepted value returns it without a buffer scan;
	// interleaving it with noise must not disturb the output.
	for i, raw := range []float32{1500, 1980, 1500, 1500} {
		if got := d.Smooth(raw); got != 1500 {
			t.Fatalf("sample %d: accepted %v, want 1500", i, got)
		}
	}
}

func TestDebounce_WindowOfOneTracksInput(t *testing.T) {
	d := NewDebounce(1)
	for _, raw := range []float32{1100, 1200, 1300} {
		if got := d.Smooth(raw); got != raw {
			t.Fatalf("accepted %v, want %v", got, raw)
		}
	}
}

func TestRingAverage_ReachesSteadyInput(t *testing.T) {
	a := NewRingAverage(5)
	var got float32
	for i := 0; i < 5; i++ {
		got = a.Smooth(1500)
	}
	// 1500/5 is exact in float32, so five pushes sum back to exactly 1500.
	if got != 1500 {
		t.Fatalf("avg = %v after 5 steady samples, want 1500", got)
	}
	if got = a.Smooth(1500); got != 1500 {
		t.Fatalf("avg drifted to %v on steady input", got)
	}
}

func TestRingAverage_PartialFill(t *testing.T) {
	a := NewRingAverage(5)
	a.Smooth(1500)
	if got := a.Smooth(1500); got != 600 {
		t.Fatalf("avg = %v after 2 of 5 samples, want 600", got)
	}
}

func TestRingAverage_EvictsOldSamples(t *testing.T) {
	a := NewRingAverage(5)
	for i := 0; i < 5; i++ {
		a.Smooth(1000)
	}
	var got float32
	for i := 0; i < 5; i++ {
		got = a.Smooth(2000)
	}
	if got != 2000 {
		t.Fatalf("avg = %v after full turnover, want 2000", got)
	}
}
