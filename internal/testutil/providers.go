package testutil

import (
	"fmt"

	"github.com/cwbudde/algo-xray/attenuation"
)

// ConstantMu returns a provider with an energy-independent linear
// attenuation coefficient in cm⁻¹.
func ConstantMu(mu float64) attenuation.ProviderFunc {
	return func(energyMeV float64) (float64, error) {
		return mu, nil
	}
}

// PowerLawMu returns a provider with μ(E) = a·E⁻³ + b for E in MeV, the
// rough photoelectric-plus-Compton shape of real filter materials. For
// positive a it is smooth and strictly decreasing in energy, which the
// half-value-layer and effective-energy searches rely on. Energies at or
// below zero fail with attenuation.ErrEnergyRange.
func PowerLawMu(a, b float64) attenuation.ProviderFunc {
	return func(energyMeV float64) (float64, error) {
		if energyMeV <= 0 {
			return 0, fmt.Errorf("%w: %g MeV", attenuation.ErrEnergyRange, energyMeV)
		}
		return a/(energyMeV*energyMeV*energyMeV) + b, nil
	}
}
