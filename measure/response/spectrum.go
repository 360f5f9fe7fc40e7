package response

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-shape/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const minFFTSize = 16

// Spectrum is a magnitude response over non-negative frequencies.
type Spectrum struct {
	FreqHz    []float64
	Magnitude []float64
}

// FrequencyResponse returns the magnitude response of an impulse response
// sampled at tickSeconds. The impulse response is zero-padded to the next
// power of two.
func FrequencyResponse(ir []float64, tickSeconds float64) (Spectrum, error) {
	if len(ir) == 0 {
		return Spectrum{}, ErrEmptyTrajectory
	}

	if tickSeconds <= 0 {
		return Spectrum{}, fmt.Errorf("frequency response: tick must be > 0: %g", tickSeconds)
	}

	fftSize := nextPowerOf2(len(ir))
	if fftSize < minFFTSize {
		fftSize = minFFTSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("frequency response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("frequency response: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	spec := Spectrum{
		FreqHz:    make([]float64, bins),
		Magnitude: make([]float64, bins),
	}
	vecmath.Magnitude(spec.Magnitude, re, im)

	binHz := 1 / (tickSeconds * float64(fftSize))
	for k := range spec.FreqHz {
		spec.FreqHz[k] = float64(k) * binHz
	}

	return spec, nil
}

// Resonance describes the magnitude peak of a Spectrum.
type Resonance struct {
	FreqHz float64
	Gain   float64
	GainDB float64
}

// Peak returns the bin with the largest magnitude. For a non-resonant
// low-pass shaper this is the DC bin.
func (s Spectrum) Peak() Resonance {
	if len(s.Magnitude) == 0 {
		return Resonance{GainDB: core.LinearToDB(0)}
	}

	best := 0
	for k, m := range s.Magnitude {
		if m > s.Magnitude[best] {
			best = k
		}
	}

	return Resonance{
		FreqHz: s.FreqHz[best],
		Gain:   s.Magnitude[best],
		GainDB: core.LinearToDB(s.Magnitude[best]),
	}
}

// CutoffHz returns the first frequency where the magnitude drops below
// -3 dB relative to DC, or 0 if it never does.
func (s Spectrum) CutoffHz() float64 {
	if len(s.Magnitude) == 0 {
		return 0
	}

	limit := s.Magnitude[0] * core.DBToLinear(-3)
	for k, m := range s.Magnitude {
		if m < limit {
			return s.FreqHz[k]
		}
	}

	return 0
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
