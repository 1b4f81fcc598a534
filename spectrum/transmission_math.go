//go:build !fastmath

package spectrum

import "math"

// expNeg computes e^(-x) using the standard library.
func expNeg(x float64) float64 {
	return math.Exp(-x)
}
