//go:build fastmath

package control

// mathTol bounds the error of the approximate mathExp/mathPow. algo-approx
// documents a max relative error of ~3e-6 for exp and ~1.2e-5 absolute for
// ln, which pow scales by the exponent.
const mathTol = 1e-4
