package control

import (
	"math"
	"time"

	"github.com/cwbudde/algo-shape/dsp/core"
)

const (
	defaultEnergyThreshold       = 0.02
	defaultEnergyGain            = 1.0
	defaultEnergyDecay           = 0.2
	defaultEnergyCurveExponent   = 1.0
	defaultEnergyStiffness       = 2.0
	defaultEnergyMinChargeFactor = 0.0
	defaultEnergyMaxDtSeconds    = 0.25

	minEnergyCurveExponent = 0.01
)

// EnergyAccumulator turns a noisy normalized control input into a
// gesture-like energy value in [0, 1].
//
// Input changes larger than the threshold charge the accumulator. Charging
// efficiency falls as energy approaches 1, following (1-E)^stiffness bounded
// below by the minimum charge factor. Energy drains continuously at decay
// units per second of real elapsed time, read from the injected Clock, so the
// drain rate is independent of how regularly the host delivers events.
//
// The emitted value is energy^curveExponent.
type EnergyAccumulator struct {
	clock Clock

	lastInput     float64
	hasInput      bool
	energy        float64
	lastTimestamp time.Time
	hasTimestamp  bool
	frozen        bool

	threshold       float64
	gain            float64
	decay           float64
	curveExponent   float64
	stiffness       float64
	minChargeFactor float64
	maxDtSeconds    float64
}

// NewEnergyAccumulator creates an accumulator with production defaults
// reading time from clock. A nil clock selects SystemClock.
func NewEnergyAccumulator(clock Clock) *EnergyAccumulator {
	if clock == nil {
		clock = SystemClock{}
	}

	return &EnergyAccumulator{
		clock:           clock,
		threshold:       defaultEnergyThreshold,
		gain:            defaultEnergyGain,
		decay:           defaultEnergyDecay,
		curveExponent:   defaultEnergyCurveExponent,
		stiffness:       defaultEnergyStiffness,
		minChargeFactor: defaultEnergyMinChargeFactor,
		maxDtSeconds:    defaultEnergyMaxDtSeconds,
	}
}

// NewEnergyAccumulatorWithParams creates an accumulator and applies p.
func NewEnergyAccumulatorWithParams(clock Clock, p EnergyParams) *EnergyAccumulator {
	e := NewEnergyAccumulator(clock)
	p.Apply(e)

	return e
}

// OnInput feeds one input value and returns the shaped output.
//
// Decay for the time elapsed since the previous event is applied before the
// input charges the accumulator. The first input only establishes the
// reference value and charges nothing. While frozen the call returns the
// current output and changes no state. NaN inputs are ignored the same way.
func (e *EnergyAccumulator) OnInput(x float64) float64 {
	if e.frozen || math.IsNaN(x) {
		return e.Output()
	}

	x = core.Clamp(x, 0, 1)

	e.decayBy(e.elapsed())

	dx := 0.0
	if e.hasInput {
		dx = math.Abs(x - e.lastInput)
	}

	e.lastInput = x
	e.hasInput = true

	excess := math.Max(0, dx-e.threshold)
	if excess > 0 {
		factor := math.Max(mathPow(1-e.energy, e.stiffness), e.minChargeFactor)

		// Inf gain times a zero factor is NaN; treat it as no charge.
		if charge := e.gain * excess * factor; !math.IsNaN(charge) {
			e.energy = core.Clamp(e.energy+charge, 0, 1)
		}
	}

	return e.Output()
}

// OnTick advances time only and returns the shaped output.
//
// The first tick after construction or Reset records the timestamp and
// applies no decay. While frozen the call returns the current output and
// changes no state.
func (e *EnergyAccumulator) OnTick() float64 {
	if e.frozen {
		return e.Output()
	}

	if !e.hasTimestamp {
		e.lastTimestamp = e.clock.Now()
		e.hasTimestamp = true

		return e.Output()
	}

	e.decayBy(e.elapsed())

	return e.Output()
}

// Reset clears input history, timestamp and energy, and returns the output.
func (e *EnergyAccumulator) Reset() float64 {
	e.lastInput = 0
	e.hasInput = false
	e.energy = 0
	e.lastTimestamp = time.Time{}
	e.hasTimestamp = false

	return e.Output()
}

// Output returns energy^curveExponent without changing state.
func (e *EnergyAccumulator) Output() float64 {
	if e.curveExponent == 1 {
		return e.energy
	}

	return mathPow(e.energy, e.curveExponent)
}

// SetThreshold sets the minimum input change that counts as activity (>= 0).
func (e *EnergyAccumulator) SetThreshold(v float64) {
	e.threshold = floorParam(e.threshold, v, 0)
}

// SetGain sets the base charging speed (>= 0).
func (e *EnergyAccumulator) SetGain(v float64) {
	e.gain = floorParam(e.gain, v, 0)
}

// SetDecay sets the decay rate in energy units per second (>= 0).
func (e *EnergyAccumulator) SetDecay(v float64) {
	e.decay = floorParam(e.decay, v, 0)
}

// SetCurveExponent sets the output shaping exponent (>= 0.01).
func (e *EnergyAccumulator) SetCurveExponent(v float64) {
	e.curveExponent = floorParam(e.curveExponent, v, minEnergyCurveExponent)
}

// SetStiffness sets the charging difficulty exponent (>= 0). Zero makes
// charging linear.
func (e *EnergyAccumulator) SetStiffness(v float64) {
	e.stiffness = floorParam(e.stiffness, v, 0)
}

// SetMinChargeFactor sets the lower bound of the charging factor, clamped
// to [0, 1]. A positive value keeps the accumulator from stalling near 1.
func (e *EnergyAccumulator) SetMinChargeFactor(v float64) {
	if math.IsNaN(v) {
		return
	}

	e.minChargeFactor = core.Clamp(v, 0, 1)
}

// SetMaxDtSeconds sets the largest elapsed time applied in one step (>= 0).
func (e *EnergyAccumulator) SetMaxDtSeconds(v float64) {
	e.maxDtSeconds = floorParam(e.maxDtSeconds, v, 0)
}

// Freeze suspends (true) or resumes (false) charging and decay.
func (e *EnergyAccumulator) Freeze(frozen bool) {
	e.frozen = frozen
}

// Energy returns the raw accumulated energy in [0, 1].
func (e *EnergyAccumulator) Energy() float64 { return e.energy }

// LastInput returns the last accepted input and whether one exists.
func (e *EnergyAccumulator) LastInput() (float64, bool) { return e.lastInput, e.hasInput }

// HasInput reports whether an input has been received since construction
// or the last Reset.
func (e *EnergyAccumulator) HasInput() bool { return e.hasInput }

// LastTimestamp returns the time of the last event and whether one exists.
func (e *EnergyAccumulator) LastTimestamp() (time.Time, bool) {
	return e.lastTimestamp, e.hasTimestamp
}

// Frozen reports whether the accumulator is frozen.
func (e *EnergyAccumulator) Frozen() bool { return e.frozen }

// Threshold returns the activity threshold.
func (e *EnergyAccumulator) Threshold() float64 { return e.threshold }

// Gain returns the charging gain.
func (e *EnergyAccumulator) Gain() float64 { return e.gain }

// Decay returns the decay rate per second.
func (e *EnergyAccumulator) Decay() float64 { return e.decay }

// CurveExponent returns the output shaping exponent.
func (e *EnergyAccumulator) CurveExponent() float64 { return e.curveExponent }

// Stiffness returns the charging difficulty exponent.
func (e *EnergyAccumulator) Stiffness() float64 { return e.stiffness }

// MinChargeFactor returns the charging factor lower bound.
func (e *EnergyAccumulator) MinChargeFactor() float64 { return e.minChargeFactor }

// MaxDtSeconds returns the elapsed-time clamp.
func (e *EnergyAccumulator) MaxDtSeconds() float64 { return e.maxDtSeconds }

// elapsed reads the clock, stores the timestamp and returns the seconds since
// the previous event clamped to [0, maxDtSeconds]. It returns 0 when no
// previous timestamp exists.
func (e *EnergyAccumulator) elapsed() float64 {
	now := e.clock.Now()

	dt := 0.0
	if e.hasTimestamp {
		dt = now.Sub(e.lastTimestamp).Seconds()
	}

	e.lastTimestamp = now
	e.hasTimestamp = true

	return core.Clamp(dt, 0, e.maxDtSeconds)
}

func (e *EnergyAccumulator) decayBy(dt float64) {
	if dt <= 0 {
		return
	}

	e.energy = core.Clamp(e.energy-e.decay*dt, 0, 1)
}
