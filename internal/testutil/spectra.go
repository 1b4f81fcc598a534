package testutil

import "github.com/cwbudde/algo-xray/spectrum"

// UniformSpectrum returns a normalized spectrum that is constant on bins
// lo through hi inclusive and zero elsewhere. Both bounds must lie in
// [0, spectrum.NumBins) with lo <= hi.
func UniformSpectrum(lo, hi int) []float64 {
	bins := make([]float64, spectrum.NumBins)
	for n := lo; n <= hi; n++ {
		bins[n] = 1
	}
	if err := spectrum.Normalize(bins); err != nil {
		panic(err)
	}
	return bins
}
