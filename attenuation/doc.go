// Package attenuation provides photon linear-attenuation coefficients for
// filter materials.
//
// The [Provider] interface is the contract consumed by the spectrum models:
// a provider is bound to one material from one data source and answers
// coefficient queries in cm⁻¹ at a photon energy given in MeV. [ProviderFunc]
// adapts a plain function, which is how tests and analytic models plug in.
//
// [Table] implements Provider on top of NIST-style mass attenuation data.
// A data source is a directory (or any fs.FS) with one file per material,
// named <material>.txt:
//
//	# comment lines start with '#'
//	density 2.699
//	1.00000e-03 1.185e+03
//	1.50000e-03 4.022e+02
//	...
//
// The density is in g/cm³ and each row holds a photon energy in MeV and the
// mass attenuation coefficient μ/ρ in cm²/g. Energies must be non-decreasing
// and positive; a repeated energy encodes the discontinuity at an absorption
// edge. Queries between tabulated points are interpolated log-log (photon
// cross sections are close to power laws between edges); an exact tabulated
// energy returns the tabulated row, the below-edge one for an edge pair.
// Queries outside the tabulated span fail with [ErrEnergyRange]; the data
// is never extrapolated.
package attenuation
