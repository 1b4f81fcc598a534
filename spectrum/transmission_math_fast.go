//go:build fastmath

package spectrum

import (
	"github.com/meko-christian/algo-approx"
)

// expNeg computes e^(-x) using fast approximation.
//
// The relative error of approx.FastExp is well below the accuracy of the
// empirical spectrum fit itself, so the fastmath build is safe for
// simulation workloads that generate spectra in bulk.
func expNeg(x float64) float64 {
	return approx.FastExp(-x)
}
