package config

import (
	"rclights-go/errcode"
	"rclights-go/x/mathx"

	"github.com/andreyvit/tinyjson"
)

// -----------------------------------------------------------------------------
// Embedded calibration profiles
//
// One JSON blob per transmitter, keyed by transmitter id. Numbers are
// measured per physical transmitter (stick endpoints drift unit to unit).
// Add a profile here and rebuild; there is no runtime reconfiguration.
// -----------------------------------------------------------------------------

const profileSilviaS15 = `{
  "range_min_us": 1019,
  "range_max_us": 1981,
  "input_freq_hz": 62,
  "smooth_window": 4,
  "blink_half_period_us": 400000,
  "duty_on": 20,
  "duty_hi": 100
}`

var embeddedProfiles = map[string][]byte{
	"silvia-s15": []byte(profileSilviaS15),
}

// EmbeddedProfileLookup allows overriding how profiles are resolved.
var EmbeddedProfileLookup = func(transmitter string) ([]byte, bool) {
	b, ok := embeddedProfiles[transmitter]
	return b, ok
}

// Load resolves a transmitter's embedded profile. Missing keys fall back to
// the compiled-in defaults so a profile only has to list what it recalibrates.
func Load(transmitter string) (Profile, error) {
	raw, ok := EmbeddedProfileLookup(transmitter)
	if !ok || len(raw) == 0 {
		return Profile{}, &errcode.E{C: errcode.UnknownProfile, Op: "config.Load", Msg: transmitter}
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return Profile{}, &errcode.E{C: errcode.InvalidProfile, Op: "config.Load", Msg: "profile is not a JSON object"}
	}

	p := Default()
	p.Transmitter = transmitter
	p.RangeMinUs = f32From(m, "range_min_us", p.RangeMinUs)
	p.RangeMaxUs = f32From(m, "range_max_us", p.RangeMaxUs)
	p.InputFreqHz = uint32(intFrom(m, "input_freq_hz", int(p.InputFreqHz)))
	p.SmoothWindow = intFrom(m, "smooth_window", p.SmoothWindow)
	p.BlinkHalfPeriodUs = int64(intFrom(m, "blink_half_period_us", int(p.BlinkHalfPeriodUs)))
	p.DutyOn = uint8(intFrom(m, "duty_on", int(p.DutyOn)))
	p.DutyHi = uint8(intFrom(m, "duty_hi", int(p.DutyHi)))

	if p.RangeMaxUs <= p.RangeMinUs || !mathx.Between(p.SmoothWindow, 1, 64) || p.InputFreqHz == 0 {
		return Profile{}, &errcode.E{C: errcode.InvalidProfile, Op: "config.Load", Msg: transmitter}
	}
	return p, nil
}

// ---- small numeric coercion helpers (JSON numbers arrive as any) ----

func f32From(m map[string]any, key string, def float32) float32 {
	switch v := m[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	case int64:
		return float32(v)
	default:
		return def
	}
}

func intFrom(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	default:
		return def
	}
}
