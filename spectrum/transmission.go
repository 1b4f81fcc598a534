package spectrum

// Transmission returns the fraction of photons that pass through a filter
// of the given thickness, exp(-mu * t), where mu is the linear attenuation
// coefficient in cm⁻¹ and the thickness is given in millimeters.
func Transmission(mu, thicknessMM float64) float64 {
	return expNeg(mu * thicknessMM * CMPerMM)
}
