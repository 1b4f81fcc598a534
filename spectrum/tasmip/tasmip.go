package tasmip

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-xray/attenuation"
	"github.com/cwbudde/algo-xray/spectrum"
)

var (
	// ErrTubePotential reports a tube potential outside [1, 150] kV.
	ErrTubePotential = errors.New("tasmip: tube potential outside [1, 150] kV")

	// ErrNegativeFiltration reports a negative (or NaN) filtration thickness.
	ErrNegativeFiltration = errors.New("tasmip: negative filtration thickness")

	// ErrNilProvider reports a missing attenuation provider.
	ErrNilProvider = errors.New("tasmip: nil attenuation provider")
)

func validate(kvp int, filtrationMM float64) error {
	if kvp < 1 || kvp >= spectrum.NumBins {
		return fmt.Errorf("%w: %d", ErrTubePotential, kvp)
	}
	if !(filtrationMM >= 0) {
		return fmt.Errorf("%w: %g", ErrNegativeFiltration, filtrationMM)
	}
	return nil
}

// Generate computes the filtered, normalized tungsten spectrum for a tube
// potential in kV and a filtration of the given material and thickness in
// mm, loading the attenuation table for material from dataDir (see
// attenuation.LoadDir).
func Generate(kvp int, filtrationMM float64, material, dataDir string) ([]float64, error) {
	if err := validate(kvp, filtrationMM); err != nil {
		return nil, err
	}
	tab, err := attenuation.LoadDir(dataDir, material)
	if err != nil {
		return nil, fmt.Errorf("tasmip: %w", err)
	}
	return GenerateWith(kvp, filtrationMM, tab)
}

// GenerateWith computes the filtered, normalized tungsten spectrum at a
// tube potential in kV (1 to 150), querying the injected provider for the
// filtration attenuation coefficients.
//
// Bins at or above the tube potential and bins outside the fitted model
// are zero. Every other bin evaluates its fluence polynomial at the
// potential and is scaled by the transmission through filtrationMM of
// filter material; the sequence is then normalized to unit trapezoid
// integral. Polynomial values extrapolate below zero for potentials under
// 31 kV; negative entries are clamped to zero after normalization and the
// spectrum renormalized, so the result is always non-negative.
//
// Provider failures abort the generation with the provider's error
// wrapped. A potential at or below the first modeled bin (10 kV) produces
// only zero bins and fails with spectrum.ErrZeroIntegral.
//
// The returned slice has spectrum.NumBins entries and is owned by the
// caller.
func GenerateWith(kvp int, filtrationMM float64, prov attenuation.Provider) ([]float64, error) {
	if err := validate(kvp, filtrationMM); err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, ErrNilProvider
	}

	fluence := make([]float64, spectrum.NumBins)
	trans := make([]float64, spectrum.NumBins)
	k := float64(kvp)
	for n := 0; n < kvp; n++ {
		if termCounts[n] == 0 {
			continue
		}
		mu, err := prov.LinearAttenuation(spectrum.BinEnergyMeV(n))
		if err != nil {
			return nil, fmt.Errorf("tasmip: attenuation at %d keV: %w", n, err)
		}
		c := &coefficients[n]
		sum := 0.0
		for t := termCounts[n] - 1; t >= 0; t-- {
			sum = sum*k + c[t]
		}
		fluence[n] = sum
		trans[n] = spectrum.Transmission(mu, filtrationMM)
	}
	vecmath.MulBlockInPlace(fluence, trans)

	if err := spectrum.Normalize(fluence); err != nil {
		return nil, fmt.Errorf("tasmip: %d kV, %g mm: %w", kvp, filtrationMM, err)
	}
	if clampNegative(fluence) {
		if err := spectrum.Normalize(fluence); err != nil {
			return nil, fmt.Errorf("tasmip: %d kV, %g mm: %w", kvp, filtrationMM, err)
		}
	}
	return fluence, nil
}

// clampNegative zeroes negative entries in place and reports whether any
// were present. Clamped spectra must be renormalized.
func clampNegative(bins []float64) bool {
	clamped := false
	for i, v := range bins {
		if v < 0 {
			bins[i] = 0
			clamped = true
		}
	}
	return clamped
}
