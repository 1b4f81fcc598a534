// Package tasmip generates tungsten-anode x-ray tube spectra with the
// TASMIP empirical model.
//
// TASMIP (Tungsten Anode Spectral Model using Interpolating Polynomials,
// Boone and Seibert, Med. Phys. 24(11), 1997) stores, per one-keV energy
// bin, the coefficients of a low-order polynomial in the tube potential
// fitted to measured spectra. Evaluating the polynomials at a given
// potential yields the unfiltered photon fluence per bin; beam filtration
// is then applied as an exponential transmission factor from an
// attenuation.Provider, and the result is normalized to unit trapezoid
// integral. The output is a relative fluence distribution on the grid
// defined by the spectrum package, not an absolute photon count.
//
// The published fit covers tube potentials from 30 to 140 kV. Potentials
// from 1 to 150 kV are accepted, but outside the fitted span the
// polynomial extrapolation degrades and the shape should be treated as
// indicative only.
package tasmip
