package control

import "math"

const (
	defaultSpringFreqHz    = 2.5
	defaultSpringDamping   = 0.9
	defaultSpringDtSeconds = 0.02

	minSpringFreqHz    = 0.0001
	minSpringDamping   = 0.0
	minSpringDtSeconds = 0.0005
)

// SpringDamper is a second-order mass-spring-damper follower:
//
//	y'' = -2ζω y' - ω² (y - target),  ω = 2π f
//
// integrated with semi-implicit Euler at a fixed step. A damping ratio of 1
// is critically damped, below 1 oscillates and above 1 is sluggish.
//
// Clamping limits the emitted value only. Internal position and velocity
// keep evolving unclamped, except that Reset snaps the position to the
// (clamped) target.
type SpringDamper struct {
	target   float64
	position float64
	velocity float64

	freqHz    float64
	damping   float64
	dtSeconds float64

	clamp clampRange
}

// NewSpringDamper creates a spring-damper with production defaults:
// 2.5 Hz natural frequency, damping ratio 0.9, 20 ms step and clamping to
// [0, 1].
func NewSpringDamper() *SpringDamper {
	return &SpringDamper{
		freqHz:    defaultSpringFreqHz,
		damping:   defaultSpringDamping,
		dtSeconds: defaultSpringDtSeconds,
		clamp:     defaultClamp(),
	}
}

// NewSpringDamperWithParams creates a spring-damper and applies p.
func NewSpringDamperWithParams(p SpringParams) *SpringDamper {
	s := NewSpringDamper()
	p.Apply(s)

	return s
}

// SetTarget sets the rest position the spring pulls toward. NaN is ignored.
func (s *SpringDamper) SetTarget(v float64) {
	if math.IsNaN(v) {
		return
	}

	s.target = s.clamp.apply(v)
}

// Tick integrates one step and returns the (clamped) position.
func (s *SpringDamper) Tick() float64 {
	w := 2 * math.Pi * math.Max(minSpringFreqHz, s.freqHz)
	z := math.Max(minSpringDamping, s.damping)

	a := -2*z*w*s.velocity - w*w*(s.position-s.target)

	s.velocity += a * s.dtSeconds
	s.position += s.velocity * s.dtSeconds

	return s.Output()
}

// Reset sets the target to v, snaps the position to it and stops the
// spring. A NaN v keeps the current target.
func (s *SpringDamper) Reset(v float64) float64 {
	if math.IsNaN(v) {
		v = s.target
	}

	s.SetTarget(v)
	s.position = s.target
	s.velocity = 0

	return s.Output()
}

// Output returns the position as emitted, clamped when enabled.
func (s *SpringDamper) Output() float64 {
	return s.clamp.apply(s.position)
}

// SetFreqHz sets the natural frequency in Hz (floored at 0.0001).
func (s *SpringDamper) SetFreqHz(hz float64) {
	s.freqHz = floorParam(s.freqHz, hz, minSpringFreqHz)
}

// SetDamping sets the damping ratio ζ (floored at 0).
func (s *SpringDamper) SetDamping(zeta float64) {
	s.damping = floorParam(s.damping, zeta, minSpringDamping)
}

// SetDtSeconds sets the integration step in seconds (floored at 0.0005).
// It should match the host's timer period.
func (s *SpringDamper) SetDtSeconds(seconds float64) {
	s.dtSeconds = floorParam(s.dtSeconds, seconds, minSpringDtSeconds)
}

// SetDtMilliseconds sets the integration step from a timer period in
// milliseconds.
func (s *SpringDamper) SetDtMilliseconds(ms float64) {
	s.SetDtSeconds(ms / 1000.0)
}

// SetClampRange sets the clamp bounds.
func (s *SpringDamper) SetClampRange(lo, hi float64) {
	s.clamp.lo = lo
	s.clamp.hi = hi
}

// SetClampEnabled enables or disables clamping of target and output.
func (s *SpringDamper) SetClampEnabled(enabled bool) {
	s.clamp.enabled = enabled
}

// Target returns the current (possibly clamped) target.
func (s *SpringDamper) Target() float64 { return s.target }

// Position returns the unclamped internal position.
func (s *SpringDamper) Position() float64 { return s.position }

// Velocity returns the internal velocity in units per second.
func (s *SpringDamper) Velocity() float64 { return s.velocity }

// FreqHz returns the natural frequency in Hz.
func (s *SpringDamper) FreqHz() float64 { return s.freqHz }

// Damping returns the damping ratio.
func (s *SpringDamper) Damping() float64 { return s.damping }

// DtSeconds returns the integration step in seconds.
func (s *SpringDamper) DtSeconds() float64 { return s.dtSeconds }

// ClampRange returns the clamp bounds.
func (s *SpringDamper) ClampRange() (lo, hi float64) { return s.clamp.lo, s.clamp.hi }

// ClampEnabled reports whether clamping is enabled.
func (s *SpringDamper) ClampEnabled() bool { return s.clamp.enabled }
