package spectrum

// Grid constants for the shared energy axis.
const (
	// NumBins is the number of energy bins on the standard grid.
	// Bin n represents a photon energy of n keV, for n in 0..150.
	NumBins = 151

	// BinWidthKeV is the energy pitch of the grid.
	BinWidthKeV = 1.0

	// MeVPerKeV converts a keV bin energy to the MeV scale expected by
	// attenuation data providers.
	MeVPerKeV = 1e-3

	// CMPerMM converts a filtration thickness in millimeters to the
	// centimeter convention of linear attenuation coefficients.
	CMPerMM = 0.1
)

// BinEnergyKeV returns the photon energy of bin n in keV.
func BinEnergyKeV(n int) float64 {
	return float64(n) * BinWidthKeV
}

// BinEnergyMeV returns the photon energy of bin n in MeV.
func BinEnergyMeV(n int) float64 {
	return BinEnergyKeV(n) * MeVPerKeV
}

// Energies returns a fresh slice with the keV energy of every bin on the
// standard grid.
func Energies() []float64 {
	out := make([]float64, NumBins)
	for i := range out {
		out[i] = BinEnergyKeV(i)
	}
	return out
}
