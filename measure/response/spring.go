package response

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/mat"
)

// Floors mirror control.SpringDamper so both see the same parameters.
const (
	minSpringFreqHz    = 0.0001
	minSpringDtSeconds = 0.0005
)

// SpringStability returns the spectral radius of the semi-implicit Euler
// update used by control.SpringDamper. In error coordinates e = y - target
// one step is
//
//	[e']   [1 - w²dt²   dt(1 - 2ζw dt)] [e]
//	[v'] = [-w² dt      1 - 2ζw dt    ] [v]
//
// A radius above 1 means the fixed-step integrator diverges; a radius of 1
// means undamped oscillation that neither grows nor decays.
func SpringStability(freqHz, damping, dtSeconds float64) (float64, error) {
	w, z, dt := springCoefficients(freqHz, damping, dtSeconds)

	k := 1 - 2*z*w*dt
	m := mat.NewDense(2, 2, []float64{
		1 - w*w*dt*dt, dt * k,
		-w * w * dt, k,
	})

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenNone); !ok {
		return 0, fmt.Errorf("spring stability: eigen decomposition failed (f=%g ζ=%g dt=%g)", freqHz, damping, dtSeconds)
	}

	radius := 0.0
	for _, v := range eig.Values(nil) {
		radius = math.Max(radius, cmplx.Abs(v))
	}

	return radius, nil
}

// SpringReference returns the closed-form damped harmonic trajectory of a
// spring released at rest from `from` toward target, sampled every
// dtSeconds. It is the continuous-time solution the SpringDamper integrator
// approximates.
func SpringReference(freqHz, damping, dtSeconds, from, target float64, ticks int) ([]float64, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("spring reference: %w: %d", ErrInvalidTicks, ticks)
	}

	w, z, dt := springCoefficients(freqHz, damping, dtSeconds)
	spring := harmonica.NewSpring(dt, w, z)

	pos, vel := from, 0.0
	out := make([]float64, ticks)

	for i := range out {
		pos, vel = spring.Update(pos, vel, target)
		out[i] = pos
	}

	return out, nil
}

func springCoefficients(freqHz, damping, dtSeconds float64) (w, z, dt float64) {
	w = 2 * math.Pi * math.Max(minSpringFreqHz, freqHz)
	z = math.Max(0, damping)
	dt = math.Max(minSpringDtSeconds, dtSeconds)

	return w, z, dt
}
