package attenuation

// Provider answers linear-attenuation queries for a single material.
// Implementations are bound to their material and data source at
// construction time.
type Provider interface {
	// LinearAttenuation returns μ in cm⁻¹ for a photon energy in MeV.
	// It fails with an error wrapping ErrEnergyRange when the energy is
	// outside the range the implementation can answer for.
	LinearAttenuation(energyMeV float64) (float64, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(energyMeV float64) (float64, error)

// LinearAttenuation calls f.
func (f ProviderFunc) LinearAttenuation(energyMeV float64) (float64, error) {
	return f(energyMeV)
}
