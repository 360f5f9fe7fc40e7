package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-shape/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not core.NearlyEqual within eps (absolute below
// magnitude 1, relative above). eps <= 0 selects the core default.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireWithin fails t if any element lies outside [lo, hi].
func RequireWithin(t testing.TB, data []float64, lo, hi float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= lo && v <= hi) {
			t.Fatalf("index %d: %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

// RequireMonotonic fails t if data ever moves against the direction of
// its endpoints. Equal neighbours are allowed.
func RequireMonotonic(t testing.TB, data []float64) {
	t.Helper()
	if len(data) < 2 {
		return
	}
	rising := data[len(data)-1] >= data[0]
	for i := 1; i < len(data); i++ {
		if rising && data[i] < data[i-1] || !rising && data[i] > data[i-1] {
			t.Fatalf("index %d: %v after %v breaks monotonicity", i, data[i], data[i-1])
		}
	}
}
