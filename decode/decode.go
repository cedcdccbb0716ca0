// Package decode maps a smoothed input high-time to the master light
// configuration. Both steps are pure: quantize the duration into one of 48
// buckets, then fold the bucket id into the configuration's bit layout.
package decode

import (
	"rclights-go/config"
	"rclights-go/types"
	"rclights-go/x/mathx"
)

// Decoder quantizes microsecond durations over a calibrated range.
// The zero value is unusable; construct with New.
type Decoder struct {
	rangeMin   float32
	bucketSize float32
}

// New derives the bucket geometry from the calibrated range. The range is
// split into config.BucketCount buckets with rounding to the nearest
// bucket center, so the edge buckets extend half a bucket past the
// calibrated endpoints.
func New(rangeMinUs, rangeMaxUs float32) Decoder {
	size := (rangeMaxUs - rangeMinUs + 1) / float32(config.BucketCount-1)
	return Decoder{rangeMin: rangeMinUs, bucketSize: size}
}

// Quantize returns the bucket id for a duration. Durations outside the
// calibrated range produce ids outside [0, BucketCount): the caller (or
// Decode) clamps, it does not wrap.
func (d Decoder) Quantize(hiUs float32) int {
	// Truncation equals floor here for every id that survives the clamp.
	return int((hiUs - d.rangeMin + d.bucketSize/2) / d.bucketSize)
}

// Fold packs a bucket id into the master configuration.
//
// The id's residue mod 3 selects the reverse/brake/off state in bits 0-1
// (0=off, 1=brake, 2=reverse; 3, i.e. both bits, is unreachable). The
// quotient, 0..15, lands in bits 2-5: blink, hi-beam and day/night. One
// 48-position input therefore addresses the full 3x16 cross product with
// no remainder.
//
// Out-of-range ids clamp to the edge buckets. The reference hardware
// extrapolated instead, truncating into undefined field combinations;
// clamping keeps a miscalibrated transmitter on the nearest real state.
func Fold(bucket int) types.MasterConfig {
	b := mathx.Clamp(bucket, 0, config.BucketCount-1)
	return types.MasterConfig((b % 3) + ((b / 3) << 2))
}

// Decode is the full duration-to-configuration pipeline.
func (d Decoder) Decode(hiUs float32) types.MasterConfig {
	return Fold(d.Quantize(hiUs))
}

// BucketSizeUs exposes the derived bucket width (diagnostics, tests).
func (d Decoder) BucketSizeUs() float32 { return d.bucketSize }
