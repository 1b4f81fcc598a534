// Package kramers generates bremsstrahlung spectra from Kramers' law.
//
// Kramers' thin-target law puts the unfiltered photon fluence at energy E
// for a tube potential E0 proportional to (E0 − E)/E. It ignores anode
// self-absorption and characteristic lines, so it runs much softer than a
// measured tungsten spectrum; its value is as an analytic reference shape
// on the same grid and pipeline as the fitted model.
package kramers

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-xray/attenuation"
	"github.com/cwbudde/algo-xray/spectrum"
)

var (
	// ErrTubePotential reports a tube potential outside [1, 150] kV.
	ErrTubePotential = errors.New("kramers: tube potential outside [1, 150] kV")

	// ErrNegativeFiltration reports a negative (or NaN) filtration thickness.
	ErrNegativeFiltration = errors.New("kramers: negative filtration thickness")

	// ErrNilProvider reports a missing attenuation provider.
	ErrNilProvider = errors.New("kramers: nil attenuation provider")
)

// Generate computes the filtered, normalized Kramers spectrum at a tube
// potential in kV (1 to 150), querying the provider for the filtration
// attenuation coefficients, filtrationMM thick.
//
// Bin 0 is always zero (the 1/E divergence is outside the model), as are
// bins at or above the tube potential. Provider failures abort the
// generation with the provider's error wrapped; a potential of 1 kV leaves
// no modeled bins and fails with spectrum.ErrZeroIntegral.
//
// The anode-material proportionality constant cancels under normalization
// and is not a parameter.
func Generate(kvp int, filtrationMM float64, prov attenuation.Provider) ([]float64, error) {
	if kvp < 1 || kvp >= spectrum.NumBins {
		return nil, fmt.Errorf("%w: %d", ErrTubePotential, kvp)
	}
	if !(filtrationMM >= 0) {
		return nil, fmt.Errorf("%w: %g", ErrNegativeFiltration, filtrationMM)
	}
	if prov == nil {
		return nil, ErrNilProvider
	}

	fluence := make([]float64, spectrum.NumBins)
	trans := make([]float64, spectrum.NumBins)
	k := float64(kvp)
	for n := 1; n < kvp; n++ {
		mu, err := prov.LinearAttenuation(spectrum.BinEnergyMeV(n))
		if err != nil {
			return nil, fmt.Errorf("kramers: attenuation at %d keV: %w", n, err)
		}
		e := spectrum.BinEnergyKeV(n)
		fluence[n] = (k - e) / e
		trans[n] = spectrum.Transmission(mu, filtrationMM)
	}
	vecmath.MulBlockInPlace(fluence, trans)

	if err := spectrum.Normalize(fluence); err != nil {
		return nil, fmt.Errorf("kramers: %d kV, %g mm: %w", kvp, filtrationMM, err)
	}
	return fluence, nil
}
