//go:build fastmath

package control

import "github.com/meko-christian/algo-approx"

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

// mathPow computes x^y using fast approximation.
// Uses the identity: x^y = e^(y * ln(x)) for x > 0.
func mathPow(x, y float64) float64 {
	if y == 0 {
		return 1
	}

	if x <= 0 {
		return 0
	}

	if x == 1 {
		return 1
	}

	return approx.FastExp(y * approx.FastLog(x))
}
