package control

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestAccumulator() (*EnergyAccumulator, *ManualClock) {
	clock := NewManualClock(testEpoch)
	return NewEnergyAccumulator(clock), clock
}

func TestEnergyAccumulatorDefaults(t *testing.T) {
	e, _ := newTestAccumulator()

	want := DefaultEnergyParams()
	if got := e.Params(); got != want {
		t.Fatalf("Params() = %#v, want %#v", got, want)
	}

	if e.Energy() != 0 || e.HasInput() || e.Frozen() {
		t.Fatalf("energy=%v hasInput=%v frozen=%v", e.Energy(), e.HasInput(), e.Frozen())
	}

	if _, ok := e.LastTimestamp(); ok {
		t.Fatal("expected no timestamp")
	}
}

func TestEnergyAccumulatorNilClockUsesSystemClock(t *testing.T) {
	e := NewEnergyAccumulator(nil)
	if _, ok := e.clock.(SystemClock); !ok {
		t.Fatalf("clock = %T, want SystemClock", e.clock)
	}
}

func TestEnergyAccumulatorFirstChargeScenario(t *testing.T) {
	e, _ := newTestAccumulator()

	if got := e.OnInput(0); got != 0 {
		t.Fatalf("first OnInput = %v, want 0", got)
	}

	if x, ok := e.LastInput(); !ok || x != 0 {
		t.Fatalf("lastInput=%v ok=%v", x, ok)
	}

	got := e.OnInput(0.5)
	if math.Abs(got-0.48) > 1e-12 {
		t.Fatalf("second OnInput = %v, want 0.48", got)
	}
}

func TestEnergyAccumulatorDecayBeforeCharge(t *testing.T) {
	e, clock := newTestAccumulator()
	e.OnInput(0)
	e.OnInput(0.5)

	clock.AdvanceSeconds(0.1)
	got := e.OnInput(1)

	// decay 0.2*0.1 first, then charge 0.48*(1-0.46)^2
	want := 0.46 + 0.48*math.Pow(0.54, 2)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("OnInput = %v, want %v", got, want)
	}
}

func TestEnergyAccumulatorChargingSlowsNearSaturation(t *testing.T) {
	e, _ := newTestAccumulator()
	e.OnInput(0)

	prevGain := math.Inf(1)
	prevEnergy := 0.0
	x := 0.0

	for i := 0; i < 6; i++ {
		x = 1 - x
		energy := e.OnInput(x)

		gained := energy - prevEnergy
		if gained > prevGain+1e-12 {
			t.Fatalf("step %d: gain grew %v -> %v", i, prevGain, gained)
		}

		prevGain = gained
		prevEnergy = energy
	}

	if prevEnergy >= 1 {
		t.Fatalf("energy = %v, want below 1 with stiffness 2", prevEnergy)
	}
}

func TestEnergyAccumulatorBelowThresholdNeverCharges(t *testing.T) {
	e, clock := newTestAccumulator()
	e.SetThreshold(0.1)
	e.SetDecay(0)

	e.OnInput(0.5)
	e.OnInput(1)

	before := e.Energy()
	x := 1.0

	for i := 0; i < 15; i++ {
		clock.AdvanceSeconds(0.01)
		x -= 0.05

		if got := e.OnInput(x); got > before {
			t.Fatalf("step %d: energy rose %v -> %v with dx <= threshold", i, before, got)
		}

		before = e.Energy()
	}
}

func TestEnergyAccumulatorOnTick(t *testing.T) {
	e, clock := newTestAccumulator()
	e.OnInput(0)
	e.OnInput(1)

	start := e.Energy()

	clock.AdvanceSeconds(0.1)
	got := e.OnTick()

	if want := start - 0.02; math.Abs(got-want) > 1e-9 {
		t.Fatalf("OnTick = %v, want %v", got, want)
	}

	if x, _ := e.LastInput(); x != 1 {
		t.Fatalf("OnTick changed lastInput to %v", x)
	}
}

func TestEnergyAccumulatorFirstTickRecordsOnly(t *testing.T) {
	e, clock := newTestAccumulator()
	e.OnInput(0)
	e.OnInput(0.6)
	e.Reset()

	clock.AdvanceSeconds(10)

	if got := e.OnTick(); got != 0 {
		t.Fatalf("first OnTick after reset = %v, want 0", got)
	}

	ts, ok := e.LastTimestamp()
	if !ok || !ts.Equal(clock.Now()) {
		t.Fatalf("timestamp=%v ok=%v, want %v", ts, ok, clock.Now())
	}

	// A charge right after the first tick sees no spurious decay.
	e.OnInput(0)
	if got := e.OnInput(0.52); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("OnInput = %v, want 0.5", got)
	}
}

func TestEnergyAccumulatorMaxDtClamp(t *testing.T) {
	e, clock := newTestAccumulator()
	e.OnInput(0)
	e.OnInput(1)

	start := e.Energy()

	clock.AdvanceSeconds(30)
	got := e.OnTick()

	want := start - defaultEnergyDecay*defaultEnergyMaxDtSeconds
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("OnTick after long gap = %v, want %v", got, want)
	}

	e.SetMaxDtSeconds(0)
	clock.AdvanceSeconds(1)

	if got := e.OnTick(); got != want {
		t.Fatalf("maxDt=0 OnTick = %v, want unchanged %v", got, want)
	}
}

func TestEnergyAccumulatorFreeze(t *testing.T) {
	e, clock := newTestAccumulator()
	e.OnInput(0)
	e.OnInput(0.8)

	energy := e.Energy()
	lastInput, _ := e.LastInput()
	ts, _ := e.LastTimestamp()

	e.Freeze(true)

	for i := 0; i < 10; i++ {
		clock.AdvanceSeconds(0.05)

		if got := e.OnInput(float64(i%2) * 0.9); got != energy {
			t.Fatalf("frozen OnInput = %v, want %v", got, energy)
		}

		if got := e.OnTick(); got != energy {
			t.Fatalf("frozen OnTick = %v, want %v", got, energy)
		}
	}

	if x, _ := e.LastInput(); x != lastInput {
		t.Fatalf("lastInput changed while frozen: %v -> %v", lastInput, x)
	}

	if got, _ := e.LastTimestamp(); !got.Equal(ts) {
		t.Fatalf("timestamp changed while frozen: %v -> %v", ts, got)
	}

	e.Freeze(false)
	clock.AdvanceSeconds(0.1)

	if got := e.OnTick(); got >= energy {
		t.Fatalf("unfrozen OnTick = %v, want decay below %v", got, energy)
	}
}

func TestEnergyAccumulatorReset(t *testing.T) {
	e, _ := newTestAccumulator()
	e.OnInput(0)
	e.OnInput(1)
	e.OnTick()

	if got := e.Reset(); got != 0 {
		t.Fatalf("Reset() = %v, want 0", got)
	}

	if e.Energy() != 0 || e.HasInput() {
		t.Fatalf("energy=%v hasInput=%v", e.Energy(), e.HasInput())
	}

	if _, ok := e.LastTimestamp(); ok {
		t.Fatal("timestamp survived reset")
	}

	// First input after reset is a reference only.
	if got := e.OnInput(0.9); got != 0 {
		t.Fatalf("OnInput after reset = %v, want 0", got)
	}
}

func TestEnergyAccumulatorCurveExponent(t *testing.T) {
	e, _ := newTestAccumulator()
	e.SetCurveExponent(2)
	e.OnInput(0)

	got := e.OnInput(0.5)
	if math.Abs(got-0.48*0.48) > mathTol {
		t.Fatalf("shaped output = %v, want %v", got, 0.48*0.48)
	}

	if math.Abs(e.Energy()-0.48) > 1e-12 {
		t.Fatalf("energy = %v, want 0.48", e.Energy())
	}

	e.SetCurveExponent(0)
	if e.CurveExponent() != minEnergyCurveExponent {
		t.Fatalf("curve = %v, want %v", e.CurveExponent(), minEnergyCurveExponent)
	}
}

func TestEnergyAccumulatorMinChargeFactor(t *testing.T) {
	e, _ := newTestAccumulator()
	e.SetStiffness(50)
	e.SetMinChargeFactor(0.25)
	e.SetDecay(0)
	e.SetGain(0.5)
	e.OnInput(0)
	e.OnInput(1)
	e.OnInput(0)

	before := e.Energy()
	got := e.OnInput(1)

	// (1-E)^50 is negligible, so the floor governs.
	want := before + 0.5*0.98*0.25
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("OnInput = %v, want %v", got, want)
	}
}

func TestEnergyAccumulatorInputClamp(t *testing.T) {
	e, _ := newTestAccumulator()
	e.OnInput(-3)

	if x, _ := e.LastInput(); x != 0 {
		t.Fatalf("lastInput = %v, want 0", x)
	}

	got := e.OnInput(7)
	if math.Abs(got-0.98) > 1e-12 {
		t.Fatalf("OnInput(7) = %v, want 0.98", got)
	}
}

func TestEnergyAccumulatorNaNInputIgnored(t *testing.T) {
	e, clock := newTestAccumulator()
	e.OnInput(0.3)
	ts, _ := e.LastTimestamp()

	clock.AdvanceSeconds(0.1)

	if got := e.OnInput(math.NaN()); got != 0 {
		t.Fatalf("OnInput(NaN) = %v, want 0", got)
	}

	if x, _ := e.LastInput(); x != 0.3 {
		t.Fatalf("lastInput = %v, want 0.3", x)
	}

	if got, _ := e.LastTimestamp(); !got.Equal(ts) {
		t.Fatal("NaN input moved the timestamp")
	}
}

func TestEnergyAccumulatorSetterRanges(t *testing.T) {
	e, _ := newTestAccumulator()

	e.SetThreshold(-1)
	e.SetGain(-1)
	e.SetDecay(-1)
	e.SetCurveExponent(-1)
	e.SetStiffness(-1)
	e.SetMinChargeFactor(-1)
	e.SetMaxDtSeconds(-1)

	want := EnergyParams{CurveExponent: minEnergyCurveExponent}
	if got := e.Params(); got != want {
		t.Fatalf("Params() = %#v, want %#v", got, want)
	}

	e.SetMinChargeFactor(3)
	if e.MinChargeFactor() != 1 {
		t.Fatalf("minChargeFactor = %v, want 1", e.MinChargeFactor())
	}

	e.SetGain(2)
	e.SetGain(math.NaN())
	e.SetMinChargeFactor(math.NaN())

	if e.Gain() != 2 || e.MinChargeFactor() != 1 {
		t.Fatalf("gain=%v minCharge=%v after NaN", e.Gain(), e.MinChargeFactor())
	}
}

func TestEnergyAccumulatorWithParams(t *testing.T) {
	p := EnergyParams{
		Threshold:       0.05,
		Gain:            3,
		Decay:           0.5,
		CurveExponent:   1.5,
		Stiffness:       1,
		MinChargeFactor: 0.1,
		MaxDtSeconds:    0.5,
		Frozen:          true,
	}

	e := NewEnergyAccumulatorWithParams(NewManualClock(testEpoch), p)
	if got := e.Params(); got != p {
		t.Fatalf("Params() = %#v, want %#v", got, p)
	}
}

func TestEnergyAccumulatorStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e, clock := newTestAccumulator()

	for i := 0; i < 5000; i++ {
		switch rng.Intn(6) {
		case 0:
			e.OnTick()
		case 1:
			e.SetGain(rng.Float64() * 20)
		case 2:
			e.SetStiffness(rng.Float64() * 4)
			e.SetMinChargeFactor(rng.Float64()*1.4 - 0.2)
		case 3:
			e.SetDecay(rng.Float64() * 5)
			e.SetCurveExponent(rng.Float64() * 3)
		default:
			e.OnInput(rng.Float64()*1.6 - 0.3)
		}

		clock.AdvanceSeconds(rng.Float64() * 0.05)

		if v := e.Energy(); v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("step %d: energy %v outside [0, 1]", i, v)
		}

		if y := e.Output(); y < 0 || y > 1 || math.IsNaN(y) {
			t.Fatalf("step %d: output %v outside [0, 1]", i, y)
		}
	}
}

func TestEnergyAccumulatorInfiniteGainDoesNotPoison(t *testing.T) {
	e, _ := newTestAccumulator()
	e.SetGain(math.Inf(1))
	e.SetStiffness(math.Inf(1))
	e.OnInput(0)
	e.OnInput(1)

	if v := e.Energy(); math.IsNaN(v) || v < 0 || v > 1 {
		t.Fatalf("energy = %v", v)
	}
}
