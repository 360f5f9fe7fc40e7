package control

import "math"

const (
	defaultClampMin = 0.0
	defaultClampMax = 1.0
)

// Shaper is a control-rate processor advanced once per tick.
type Shaper interface {
	// Tick advances the shaper by one control tick and returns the emitted value.
	Tick() float64
}

// Follower is a Shaper that tracks a target value.
// LagFollower and SpringDamper implement it.
type Follower interface {
	Shaper
	SetTarget(v float64)
	Reset(v float64) float64
}

var (
	_ Follower = (*LagFollower)(nil)
	_ Follower = (*SpringDamper)(nil)
)

// clampRange holds an optional output/target clamp.
//
// The bounds are used as given: with lo > hi every value maps to lo.
type clampRange struct {
	lo      float64
	hi      float64
	enabled bool
}

func defaultClamp() clampRange {
	return clampRange{lo: defaultClampMin, hi: defaultClampMax, enabled: true}
}

func (c clampRange) apply(v float64) float64 {
	if !c.enabled {
		return v
	}

	return math.Max(c.lo, math.Min(c.hi, v))
}

// floorParam returns max(floor, v), keeping prev when v is NaN.
func floorParam(prev, v, floor float64) float64 {
	if math.IsNaN(v) {
		return prev
	}

	return math.Max(floor, v)
}
