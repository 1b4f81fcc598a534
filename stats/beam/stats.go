// Package beam computes beam-quality statistics from fluence spectra.
//
// All functions take relative photon fluence on the one-keV grid of the
// spectrum package: index n holds the fluence at n keV. The metrics follow
// the usual diagnostic-radiology definitions: half-value layers are filter
// thicknesses in mm, the effective energy is the monoenergetic equivalent,
// and the homogeneity coefficient is the ratio of the first to the second
// half-value layer.
package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-xray/attenuation"
	"github.com/cwbudde/algo-xray/spectrum"
)

var (
	// ErrZeroFluence reports a spectrum without positive fluence.
	ErrZeroFluence = errors.New("beam: zero total fluence")

	// ErrFraction reports a fluence fraction outside (0, 1).
	ErrFraction = errors.New("beam: fraction outside (0, 1)")

	// ErrNilProvider reports a missing attenuation provider.
	ErrNilProvider = errors.New("beam: nil attenuation provider")

	// ErrNoBracket reports a search that could not bracket a solution.
	ErrNoBracket = errors.New("beam: search could not bracket a solution")
)

// Thickness search ceiling in mm.
const maxSearchMM = 1e9

// Stats holds beam-quality statistics computed from a fluence spectrum.
type Stats struct {
	BinCount     int
	TotalFluence float64 // trapezoid integral of the fluence
	MeanEnergy   float64 // fluence-weighted mean, keV
	MedianEnergy float64 // energy splitting the fluence in half, keV
	PeakEnergy   float64 // energy of the fluence maximum, keV
	Peak         float64 // fluence at the maximum
	Spread       float64 // fluence-weighted standard deviation, keV
}

// Calculate computes all beam statistics in one pass. A spectrum without
// positive fluence yields zero statistics, not an error.
func Calculate(fluence []float64) Stats {
	s := Stats{
		BinCount:     len(fluence),
		TotalFluence: spectrum.TrapezoidIntegral(fluence),
	}

	sum := 0.0
	for i, v := range fluence {
		sum += v
		if v > s.Peak {
			s.Peak = v
			s.PeakEnergy = spectrum.BinEnergyKeV(i)
		}
	}
	if sum <= 0 || s.TotalFluence <= 0 {
		return Stats{BinCount: len(fluence)}
	}

	s.MeanEnergy = weightedMean(fluence, sum)
	s.MedianEnergy = energyAtFraction(fluence, 0.5*s.TotalFluence)
	s.Spread = spreadAround(fluence, s.MeanEnergy, sum)
	return s
}

// MeanEnergy returns the fluence-weighted mean energy in keV, 0 for a
// spectrum without positive fluence.
func MeanEnergy(fluence []float64) float64 {
	sum := 0.0
	for _, v := range fluence {
		sum += v
	}
	if sum <= 0 {
		return 0
	}
	return weightedMean(fluence, sum)
}

func weightedMean(fluence []float64, sum float64) float64 {
	weighted := 0.0
	for i, v := range fluence {
		weighted += spectrum.BinEnergyKeV(i) * v
	}
	return weighted / sum
}

// spreadAround computes the fluence-weighted standard deviation in keV.
func spreadAround(fluence []float64, mean, sum float64) float64 {
	weightedSq := 0.0
	for i, v := range fluence {
		d := spectrum.BinEnergyKeV(i) - mean
		weightedSq += d * d * v
	}
	return math.Sqrt(weightedSq / sum)
}

// EnergyAtFluenceFraction returns the energy in keV below which the given
// fraction of the trapezoid fluence lies, linearly interpolated between
// grid energies. The fraction must be strictly between 0 and 1.
func EnergyAtFluenceFraction(fluence []float64, fraction float64) (float64, error) {
	if !(fraction > 0 && fraction < 1) {
		return 0, fmt.Errorf("%w: %g", ErrFraction, fraction)
	}
	total := spectrum.TrapezoidIntegral(fluence)
	if total <= 0 {
		return 0, ErrZeroFluence
	}
	return energyAtFraction(fluence, fraction*total), nil
}

// energyAtFraction walks the cumulative trapezoid fluence to the segment
// containing threshold and interpolates inside it. The caller guarantees
// 0 < threshold < total.
func energyAtFraction(fluence []float64, threshold float64) float64 {
	cum := 0.0
	for n := 0; n+1 < len(fluence); n++ {
		seg := (fluence[n] + fluence[n+1]) / 2
		if cum+seg >= threshold {
			t := (threshold - cum) / seg
			return spectrum.BinEnergyKeV(n) + t*spectrum.BinWidthKeV
		}
		cum += seg
	}
	return spectrum.BinEnergyKeV(len(fluence) - 1)
}

// HVL returns the first half-value layer: the filter thickness in mm that
// halves the trapezoid fluence.
func HVL(fluence []float64, prov attenuation.Provider) (float64, error) {
	return HVLAt(fluence, prov, 0.5)
}

// HVLAt returns the filter thickness in mm that attenuates the trapezoid
// fluence to the given fraction of its unfiltered value. The provider is
// queried once per bin with positive fluence; the fraction must be
// strictly between 0 and 1.
func HVLAt(fluence []float64, prov attenuation.Provider, fraction float64) (float64, error) {
	if !(fraction > 0 && fraction < 1) {
		return 0, fmt.Errorf("%w: %g", ErrFraction, fraction)
	}
	if prov == nil {
		return 0, ErrNilProvider
	}
	total := spectrum.TrapezoidIntegral(fluence)
	if total <= 0 {
		return 0, ErrZeroFluence
	}
	mu, err := coefficients(fluence, prov)
	if err != nil {
		return 0, err
	}

	scratch := make([]float64, len(fluence))
	transmittedAt := func(mm float64) float64 {
		for n, f := range fluence {
			if f > 0 {
				scratch[n] = f * spectrum.Transmission(mu[n], mm)
			} else {
				scratch[n] = 0
			}
		}
		return spectrum.TrapezoidIntegral(scratch)
	}

	target := fraction * total
	hi := 1.0
	for transmittedAt(hi) > target {
		hi *= 2
		if hi > maxSearchMM {
			return 0, fmt.Errorf("%w: fluence fraction %g not reached below %g mm", ErrNoBracket, fraction, maxSearchMM)
		}
	}
	lo := 0.0
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if transmittedAt(mid) > target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// HomogeneityCoefficient returns HVL1/HVL2, the ratio of the first to the
// second half-value layer. It is 1 for a monoenergetic beam and drops
// below 1 as beam hardening stretches the second layer.
func HomogeneityCoefficient(fluence []float64, prov attenuation.Provider) (float64, error) {
	hvl1, err := HVLAt(fluence, prov, 0.5)
	if err != nil {
		return 0, err
	}
	quarter, err := HVLAt(fluence, prov, 0.25)
	if err != nil {
		return 0, err
	}
	return hvl1 / (quarter - hvl1), nil
}

// EffectiveEnergy returns the monoenergetic-equivalent energy in keV: the
// energy whose attenuation coefficient equals ln2 over the beam's
// half-value layer. The provider's μ must decrease monotonically across
// the spectrum's support; when the target coefficient is not bracketed
// there the search fails with ErrNoBracket.
func EffectiveEnergy(fluence []float64, prov attenuation.Provider) (float64, error) {
	hvlMM, err := HVL(fluence, prov)
	if err != nil {
		return 0, err
	}
	target := math.Ln2 / (hvlMM * spectrum.CMPerMM)

	lo, hi := supportBins(fluence)
	if lo == hi {
		return spectrum.BinEnergyKeV(lo), nil
	}
	muLo, err := prov.LinearAttenuation(spectrum.BinEnergyMeV(lo))
	if err != nil {
		return 0, fmt.Errorf("beam: attenuation at %d keV: %w", lo, err)
	}
	muHi, err := prov.LinearAttenuation(spectrum.BinEnergyMeV(hi))
	if err != nil {
		return 0, fmt.Errorf("beam: attenuation at %d keV: %w", hi, err)
	}
	if target > muLo || target < muHi {
		return 0, fmt.Errorf("%w: mu %g outside [%g, %g]", ErrNoBracket, target, muHi, muLo)
	}

	loE, hiE := spectrum.BinEnergyKeV(lo), spectrum.BinEnergyKeV(hi)
	for i := 0; i < 80; i++ {
		mid := (loE + hiE) / 2
		m, err := prov.LinearAttenuation(mid * spectrum.MeVPerKeV)
		if err != nil {
			return 0, fmt.Errorf("beam: attenuation at %g keV: %w", mid, err)
		}
		if m > target {
			loE = mid
		} else {
			hiE = mid
		}
	}
	return (loE + hiE) / 2, nil
}

// coefficients queries μ in cm⁻¹ for every bin with positive fluence.
func coefficients(fluence []float64, prov attenuation.Provider) ([]float64, error) {
	mu := make([]float64, len(fluence))
	for n, f := range fluence {
		if f <= 0 {
			continue
		}
		m, err := prov.LinearAttenuation(spectrum.BinEnergyMeV(n))
		if err != nil {
			return nil, fmt.Errorf("beam: attenuation at %d keV: %w", n, err)
		}
		mu[n] = m
	}
	return mu, nil
}

// supportBins returns the first and last bins with positive fluence.
// Callers rule out all-zero spectra beforehand.
func supportBins(fluence []float64) (lo, hi int) {
	lo, hi = -1, -1
	for n, f := range fluence {
		if f > 0 {
			if lo < 0 {
				lo = n
			}
			hi = n
		}
	}
	return lo, hi
}
