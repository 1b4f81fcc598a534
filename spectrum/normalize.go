package spectrum

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// ErrZeroIntegral is returned when a spectrum integrates to zero and
// therefore cannot be normalized.
var ErrZeroIntegral = errors.New("spectrum: zero trapezoid integral, spectrum cannot be normalized")

// TrapezoidIntegral returns the piecewise-linear integral of the bin
// sequence, Σ (bins[n] + bins[n+1]) / 2 over adjacent pairs.
//
// Fewer than two bins span no width and integrate to 0.
func TrapezoidIntegral(bins []float64) float64 {
	if len(bins) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(bins)-1; i++ {
		total += (bins[i] + bins[i+1]) / 2
	}
	return total
}

// Normalize scales bins in place so their trapezoid integral is 1.
//
// If the integral is exactly zero the slice is left untouched and
// [ErrZeroIntegral] is returned; no NaN or Inf values are ever produced.
func Normalize(bins []float64) error {
	total := TrapezoidIntegral(bins)
	if total == 0 {
		return ErrZeroIntegral
	}

	vecmath.ScaleBlockInPlace(bins, 1/total)
	return nil
}
