//go:build !fastmath

package control

// mathTol bounds the error of mathExp/mathPow against package math.
const mathTol = 1e-12
