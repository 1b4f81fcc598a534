// Package spectrum provides the discrete energy-grid conventions shared by
// the x-ray spectrum models and statistics in this module.
//
// Spectra are plain []float64 fluence sequences on a fixed grid of 151
// one-keV-wide bins: bin n holds the relative photon fluence at n keV, for
// n in 0..150. The grid is immutable and index-aligned across packages, so
// a spectrum produced by one model can be fed directly into filtration,
// statistics, and comparison code.
//
// The package also owns the two unit conversions that cross package
// boundaries: bin index (keV) to the megaelectronvolt scale used by
// attenuation data, and filtration thickness in millimeters to the
// centimeter convention of linear attenuation coefficients. Both are
// exposed as named constants so the physics formulas stay legible.
package spectrum
