package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-shape/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const (
	riseLow        = 0.1
	riseHigh       = 0.9
	settlingBand   = 0.02
	signChangeTol  = 1e-12
	monotonicSlack = 1e-12
)

// Metrics summarizes a step trajectory. Times are in seconds, where sample i
// of a trajectory is the output after tick i+1.
type Metrics struct {
	// RiseTime is the 10 %–90 % rise time. NaN if 90 % is never reached.
	RiseTime float64
	// Overshoot is the largest excursion past the step end, as a fraction of
	// the step size. Zero when the trajectory never passes the end value.
	Overshoot float64
	// SettlingTime is the time after which the trajectory stays within 2 %
	// of the step size around the end value. NaN if it has not settled.
	SettlingTime float64
	// FinalError is the last sample minus the end value.
	FinalError float64
	// SignChanges counts sign changes of (y - end), ignoring exact hits.
	SignChanges int
	// Monotonic reports whether the trajectory never moves against the step
	// direction.
	Monotonic bool
}

// Analyze computes step metrics for traj recorded from a step from -> to at
// tickSeconds per sample.
func Analyze(traj []float64, from, to, tickSeconds float64) (Metrics, error) {
	if len(traj) == 0 {
		return Metrics{}, ErrEmptyTrajectory
	}

	span := to - from
	if span == 0 {
		return Metrics{}, fmt.Errorf("analyze: %w: %g", ErrFlatStep, from)
	}

	norm := Normalize(traj, from, to)

	m := Metrics{
		RiseTime:     math.NaN(),
		SettlingTime: math.NaN(),
		FinalError:   traj[len(traj)-1] - to,
		Monotonic:    true,
	}

	i10, i90 := -1, -1
	peak := math.Inf(-1)
	lastOutside := -1
	prevSign := 0

	for i, y := range norm {
		if i10 < 0 && y >= riseLow {
			i10 = i
		}

		if i90 < 0 && y >= riseHigh {
			i90 = i
		}

		peak = math.Max(peak, y)

		if math.Abs(y-1) > settlingBand {
			lastOutside = i
		}

		if i > 0 && y < norm[i-1]-monotonicSlack {
			m.Monotonic = false
		}

		sign := 0
		switch {
		case y-1 > signChangeTol:
			sign = 1
		case y-1 < -signChangeTol:
			sign = -1
		}

		if sign != 0 {
			if prevSign != 0 && sign != prevSign {
				m.SignChanges++
			}

			prevSign = sign
		}
	}

	if i10 >= 0 && i90 >= 0 {
		m.RiseTime = float64(i90-i10) * tickSeconds
	}

	if peak > 1 {
		m.Overshoot = peak - 1
	}

	if lastOutside < len(norm)-1 {
		m.SettlingTime = float64(lastOutside+2) * tickSeconds
	}

	return m, nil
}

// Normalize maps traj so that from becomes 0 and to becomes 1.
// from must differ from to.
func Normalize(traj []float64, from, to float64) []float64 {
	shifted := make([]float64, len(traj))
	copy(shifted, traj)

	offset := make([]float64, len(traj))
	core.Fill(offset, -from)
	vecmath.AddBlockInPlace(shifted, offset)

	out := make([]float64, len(traj))
	vecmath.ScaleBlock(out, shifted, 1/(to-from))

	return out
}

// MaxDeviation returns the largest absolute sample difference between a and b.
func MaxDeviation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("max deviation: %w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}

	return maxDiff, nil
}
