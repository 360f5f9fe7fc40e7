package testutil

import (
	"math/rand"
)

// DC generates a constant control stream.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Step holds from for the first at samples and to afterwards.
func Step(from, to float64, at, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < at {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out
}

// Ramp moves linearly from from to to, hitting both endpoints. A
// non-positive length yields an empty stream.
func Ramp(from, to float64, length int) []float64 {
	if length <= 0 {
		return []float64{}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = to
		return out
	}
	step := (to - from) / float64(length-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
	out[length-1] = to
	return out
}

// Jitter generates a seeded control stream center ± amplitude, clamped to
// [0,1] like a normalized sensor reading.
func Jitter(seed int64, center, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		v := center + (rng.Float64()*2-1)*amplitude
		out[i] = min(1, max(0, v))
	}
	return out
}
