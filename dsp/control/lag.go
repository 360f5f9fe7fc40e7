package control

import "math"

const (
	defaultLagAttackMs  = 120.0
	defaultLagReleaseMs = 60.0
	defaultLagTickMs    = 20.0

	minLagTimeMs = 0.0
	minLagTickMs = 0.1
	minLagTauMs  = 0.0001
)

// LagFollower is an asymmetric first-order lag for control-rate signals.
//
// Rising transitions (target above output) are smoothed with the attack time
// constant and falling transitions with the release time constant. The
// direction is re-evaluated on every tick, so a target reversal mid-transition
// immediately swaps the governing time constant.
type LagFollower struct {
	target float64
	output float64

	attackMs  float64
	releaseMs float64
	tickMs    float64

	clamp clampRange
}

// NewLagFollower creates a lag follower with production defaults:
// 120 ms attack, 60 ms release, 20 ms tick and clamping to [0, 1].
func NewLagFollower() *LagFollower {
	return &LagFollower{
		attackMs:  defaultLagAttackMs,
		releaseMs: defaultLagReleaseMs,
		tickMs:    defaultLagTickMs,
		clamp:     defaultClamp(),
	}
}

// NewLagFollowerWithParams creates a lag follower and applies p.
func NewLagFollowerWithParams(p LagParams) *LagFollower {
	l := NewLagFollower()
	p.Apply(l)

	return l
}

// SetTarget sets the value the output moves toward. NaN is ignored.
func (l *LagFollower) SetTarget(v float64) {
	if math.IsNaN(v) {
		return
	}

	l.target = l.clamp.apply(v)
}

// Tick advances the follower by one tick and returns the new output.
func (l *LagFollower) Tick() float64 {
	dt := math.Max(minLagTickMs, l.tickMs)

	tau := l.releaseMs
	if l.target > l.output {
		tau = l.attackMs
	}

	if tau <= 0 {
		l.output = l.target
	} else {
		l.output += lagAlpha(dt, tau) * (l.target - l.output)
	}

	l.output = l.clamp.apply(l.output)

	return l.output
}

// Reset sets the target to v and snaps the output to it, bypassing
// smoothing. A NaN v keeps the current target.
func (l *LagFollower) Reset(v float64) float64 {
	if math.IsNaN(v) {
		v = l.target
	}

	l.SetTarget(v)
	l.output = l.target

	return l.output
}

// SetAttackMs sets the rising time constant in milliseconds (floored at 0).
// Zero makes rising transitions immediate.
func (l *LagFollower) SetAttackMs(ms float64) {
	l.attackMs = floorParam(l.attackMs, ms, minLagTimeMs)
}

// SetReleaseMs sets the falling time constant in milliseconds (floored at 0).
// Zero makes falling transitions immediate.
func (l *LagFollower) SetReleaseMs(ms float64) {
	l.releaseMs = floorParam(l.releaseMs, ms, minLagTimeMs)
}

// SetTickMs sets the assumed interval between ticks in milliseconds
// (floored at 0.1). It should match the host's timer period.
func (l *LagFollower) SetTickMs(ms float64) {
	l.tickMs = floorParam(l.tickMs, ms, minLagTickMs)
}

// SetClampRange sets the clamp bounds. The new range applies from the next
// SetTarget or Tick.
func (l *LagFollower) SetClampRange(lo, hi float64) {
	l.clamp.lo = lo
	l.clamp.hi = hi
}

// SetClampEnabled enables or disables clamping of target and output.
func (l *LagFollower) SetClampEnabled(enabled bool) {
	l.clamp.enabled = enabled
}

// Target returns the current (possibly clamped) target.
func (l *LagFollower) Target() float64 { return l.target }

// Output returns the last emitted output.
func (l *LagFollower) Output() float64 { return l.output }

// AttackMs returns the attack time constant in milliseconds.
func (l *LagFollower) AttackMs() float64 { return l.attackMs }

// ReleaseMs returns the release time constant in milliseconds.
func (l *LagFollower) ReleaseMs() float64 { return l.releaseMs }

// TickMs returns the assumed tick interval in milliseconds.
func (l *LagFollower) TickMs() float64 { return l.tickMs }

// ClampRange returns the clamp bounds.
func (l *LagFollower) ClampRange() (lo, hi float64) { return l.clamp.lo, l.clamp.hi }

// ClampEnabled reports whether clamping is enabled.
func (l *LagFollower) ClampEnabled() bool { return l.clamp.enabled }

// lagAlpha converts a time constant to a per-tick smoothing coefficient:
// alpha = 1 - exp(-dt/tau).
func lagAlpha(dtMs, tauMs float64) float64 {
	tauMs = math.Max(minLagTauMs, tauMs)
	return 1.0 - mathExp(-dtMs/tauMs)
}
