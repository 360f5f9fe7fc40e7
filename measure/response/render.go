package response

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-shape/dsp/control"
	"github.com/cwbudde/algo-shape/dsp/core"
)

// StepResponse resets f to from, sets the target to to and returns the
// outputs of the following ticks.
func StepResponse(f control.Follower, from, to float64, ticks int) ([]float64, error) {
	return StepResponseInto(nil, f, from, to, ticks)
}

// StepResponseInto is StepResponse writing into dst, which is reused when
// its capacity allows.
func StepResponseInto(dst []float64, f control.Follower, from, to float64, ticks int) ([]float64, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("step response: %w: %d", ErrInvalidTicks, ticks)
	}

	f.Reset(from)
	f.SetTarget(to)

	out := core.EnsureLen(dst, ticks)
	for i := range out {
		out[i] = f.Tick()
	}

	return out, nil
}

// ImpulseResponse resets f to 0, holds the target at 1 for a single tick
// and returns the outputs of ticks ticks.
//
// The result is only a true impulse response for linear settings: disable
// clamping and use equal attack and release for a LagFollower.
func ImpulseResponse(f control.Follower, ticks int) ([]float64, error) {
	return ImpulseResponseInto(nil, f, ticks)
}

// ImpulseResponseInto is ImpulseResponse writing into dst, which is reused
// when its capacity allows.
func ImpulseResponseInto(dst []float64, f control.Follower, ticks int) ([]float64, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("impulse response: %w: %d", ErrInvalidTicks, ticks)
	}

	f.Reset(0)
	f.SetTarget(1)

	out := core.EnsureLen(dst, ticks)
	for i := range out {
		out[i] = f.Tick()
		if i == 0 {
			f.SetTarget(0)
		}
	}

	return out, nil
}

// EnergyTrace drives acc through inputs, advancing clock by stepSeconds
// before every event after the first. A NaN input is delivered as a
// time-only tick instead of an input value.
func EnergyTrace(acc *control.EnergyAccumulator, clock *control.ManualClock, inputs []float64, stepSeconds float64) []float64 {
	out := make([]float64, len(inputs))

	for i, x := range inputs {
		if i > 0 {
			clock.AdvanceSeconds(stepSeconds)
		}

		if math.IsNaN(x) {
			out[i] = acc.OnTick()
			continue
		}

		out[i] = acc.OnInput(x)
	}

	return out
}
