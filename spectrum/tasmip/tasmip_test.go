package tasmip

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-xray/attenuation"
	"github.com/cwbudde/algo-xray/internal/testutil"
	"github.com/cwbudde/algo-xray/spectrum"
)

// meanKeV is the fluence-weighted mean energy of a spectrum in keV.
func meanKeV(bins []float64) float64 {
	var weighted, total float64
	for n, v := range bins {
		weighted += float64(n) * v
		total += v
	}
	return weighted / total
}

func TestGenerateWithInvariants(t *testing.T) {
	prov := testutil.ConstantMu(1)
	for kvp := 11; kvp <= 150; kvp++ {
		bins, err := GenerateWith(kvp, 0, prov)
		if err != nil {
			t.Fatalf("GenerateWith(%d, 0) failed: %v", kvp, err)
		}
		if len(bins) != spectrum.NumBins {
			t.Fatalf("GenerateWith(%d, 0): len = %d, want %d", kvp, len(bins), spectrum.NumBins)
		}
		testutil.RequireFinite(t, bins)
		testutil.RequireNonNegative(t, bins)
		testutil.RequireUnitTrapezoid(t, bins, 1e-9)
		for n := kvp; n < spectrum.NumBins; n++ {
			if bins[n] != 0 {
				t.Fatalf("GenerateWith(%d, 0): bin %d = %v, want 0 at or above the potential", kvp, n, bins[n])
			}
		}
	}
}

func TestGenerateWithDeterminism(t *testing.T) {
	prov := testutil.PowerLawMu(8e-5, 0.1)
	a, err := GenerateWith(90, 1.5, prov)
	if err != nil {
		t.Fatalf("GenerateWith failed: %v", err)
	}
	b, err := GenerateWith(90, 1.5, prov)
	if err != nil {
		t.Fatalf("GenerateWith failed: %v", err)
	}
	d, err := testutil.MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d != 0 {
		t.Fatalf("identical inputs differ by %v, want bit-identical results", d)
	}

	// The result is caller-owned; mutating it must not leak into later calls.
	a[40] = -1
	c, err := GenerateWith(90, 1.5, prov)
	if err != nil {
		t.Fatalf("GenerateWith failed: %v", err)
	}
	if c[40] != b[40] {
		t.Fatalf("bin 40 = %v after caller mutation, want %v", c[40], b[40])
	}
}

func TestGenerateWithHardening(t *testing.T) {
	prov := testutil.PowerLawMu(8e-5, 0.1)
	prev := 0.0
	for _, mm := range []float64{0, 0.5, 1, 2.5, 5} {
		bins, err := GenerateWith(80, mm, prov)
		if err != nil {
			t.Fatalf("GenerateWith(80, %g) failed: %v", mm, err)
		}
		mean := meanKeV(bins)
		if mean <= prev {
			t.Fatalf("mean energy %v keV at %g mm, want strictly above %v keV", mean, mm, prev)
		}
		prev = mean
	}
}

func TestGenerateWithFiltrationRatios(t *testing.T) {
	prov := testutil.PowerLawMu(8e-5, 0.1)
	unfiltered, err := GenerateWith(80, 0, prov)
	if err != nil {
		t.Fatalf("GenerateWith(80, 0) failed: %v", err)
	}
	filtered, err := GenerateWith(80, 2.5, prov)
	if err != nil {
		t.Fatalf("GenerateWith(80, 2.5) failed: %v", err)
	}
	// Up to the common normalization factor, filtered/unfiltered per bin is
	// the transmission factor, so it must grow strictly with energy for a
	// provider whose μ decreases with energy.
	prev := 0.0
	for n := 10; n < 80; n++ {
		if unfiltered[n] <= 0 {
			t.Fatalf("unfiltered bin %d = %v, want positive", n, unfiltered[n])
		}
		ratio := filtered[n] / unfiltered[n]
		if ratio <= prev {
			t.Fatalf("transmission ratio at bin %d = %v, want strictly above %v", n, ratio, prev)
		}
		prev = ratio
	}
}

func TestGenerateWithZeroIntegral(t *testing.T) {
	prov := testutil.ConstantMu(1)
	for kvp := 1; kvp <= 10; kvp++ {
		bins, err := GenerateWith(kvp, 0, prov)
		if !errors.Is(err, spectrum.ErrZeroIntegral) {
			t.Fatalf("GenerateWith(%d, 0): got (%v, %v), want ErrZeroIntegral", kvp, bins, err)
		}
		if bins != nil {
			t.Fatalf("GenerateWith(%d, 0): got partial result %v", kvp, bins)
		}
	}
}

func TestGenerateWithValidation(t *testing.T) {
	called := false
	spy := attenuation.ProviderFunc(func(energyMeV float64) (float64, error) {
		called = true
		return 1, nil
	})

	for _, kvp := range []int{-5, 0, 151, 200} {
		if _, err := GenerateWith(kvp, 0, spy); !errors.Is(err, ErrTubePotential) {
			t.Fatalf("GenerateWith(%d, 0): got %v, want ErrTubePotential", kvp, err)
		}
	}
	for _, mm := range []float64{-0.1, -5, math.NaN()} {
		if _, err := GenerateWith(80, mm, spy); !errors.Is(err, ErrNegativeFiltration) {
			t.Fatalf("GenerateWith(80, %g): got %v, want ErrNegativeFiltration", mm, err)
		}
	}
	if called {
		t.Fatal("provider queried before validation")
	}

	if _, err := GenerateWith(80, 1, nil); !errors.Is(err, ErrNilProvider) {
		t.Fatalf("GenerateWith(80, 1, nil): got %v, want ErrNilProvider", err)
	}
}

// Below 14 kV every modeled polynomial extrapolates negative, so the
// negative trapezoid total flips the signs back during normalization.
func TestGenerateWithLowPotentialFlip(t *testing.T) {
	prov := testutil.ConstantMu(1)
	bins, err := GenerateWith(11, 0, prov)
	if err != nil {
		t.Fatalf("GenerateWith(11, 0) failed: %v", err)
	}
	if math.Abs(bins[10]-1) > 1e-12 {
		t.Fatalf("bin 10 = %v, want 1 (single modeled bin)", bins[10])
	}
	for n, v := range bins {
		if n != 10 && v != 0 {
			t.Fatalf("bin %d = %v, want 0", n, v)
		}
	}
}

// At 14 kV the modeled bins mix signs; the negative ones are clamped and
// the spectrum renormalized.
func TestGenerateWithMixedSignClamp(t *testing.T) {
	prov := testutil.ConstantMu(1)
	bins, err := GenerateWith(14, 0, prov)
	if err != nil {
		t.Fatalf("GenerateWith(14, 0) failed: %v", err)
	}
	testutil.RequireNonNegative(t, bins)
	testutil.RequireUnitTrapezoid(t, bins, 1e-9)
	for n := 10; n <= 12; n++ {
		if bins[n] != 0 {
			t.Fatalf("bin %d = %v, want clamped to 0", n, bins[n])
		}
	}
	if math.Abs(bins[13]-1) > 1e-12 {
		t.Fatalf("bin 13 = %v, want 1 after renormalization", bins[13])
	}
}

func TestGenerateWithProviderError(t *testing.T) {
	prov := attenuation.ProviderFunc(func(energyMeV float64) (float64, error) {
		if energyMeV > 0.05 {
			return 0, attenuation.ErrEnergyRange
		}
		return 1, nil
	})
	bins, err := GenerateWith(80, 1, prov)
	if !errors.Is(err, attenuation.ErrEnergyRange) {
		t.Fatalf("got (%v, %v), want wrapped ErrEnergyRange", bins, err)
	}
	if bins != nil {
		t.Fatalf("got partial result %v, want nil", bins)
	}
}

// Zero filtration still queries the provider once per modeled bin below the
// potential; the transmission factor is simply one.
func TestGenerateWithZeroFiltrationQueries(t *testing.T) {
	queries := 0
	prov := attenuation.ProviderFunc(func(energyMeV float64) (float64, error) {
		queries++
		return 3, nil
	})
	if _, err := GenerateWith(50, 0, prov); err != nil {
		t.Fatalf("GenerateWith(50, 0) failed: %v", err)
	}
	if queries != 40 {
		t.Fatalf("provider queried %d times, want 40 (bins 10..49)", queries)
	}
}

func TestGenerateFromTable(t *testing.T) {
	bins, err := Generate(80, 0, "Al", "testdata")
	if err != nil {
		t.Fatalf("Generate(80, 0, Al) failed: %v", err)
	}
	testutil.RequireNonNegative(t, bins)
	testutil.RequireUnitTrapezoid(t, bins, 1e-9)
	for n := 80; n < spectrum.NumBins; n++ {
		if bins[n] != 0 {
			t.Fatalf("bin %d = %v, want 0 at or above 80 kV", n, bins[n])
		}
	}
	positive := false
	for n := 10; n < 80; n++ {
		if bins[n] > 0 {
			positive = true
			break
		}
	}
	if !positive {
		t.Fatal("no strictly positive bin in [10, 79]")
	}

	// Filtration hardens the beam through the real table too.
	filtered, err := Generate(80, 2.5, "Al", "testdata")
	if err != nil {
		t.Fatalf("Generate(80, 2.5, Al) failed: %v", err)
	}
	if meanKeV(filtered) <= meanKeV(bins) {
		t.Fatalf("mean energy %v keV after 2.5 mm Al, want above %v keV", meanKeV(filtered), meanKeV(bins))
	}
}

func TestGenerateMaterialNotFound(t *testing.T) {
	if _, err := Generate(80, 0, "Pb", "testdata"); !errors.Is(err, attenuation.ErrMaterialNotFound) {
		t.Fatalf("got %v, want ErrMaterialNotFound", err)
	}
}

// Input validation happens before the data source is touched.
func TestGenerateValidatesFirst(t *testing.T) {
	if _, err := Generate(0, 0, "Pb", "testdata"); !errors.Is(err, ErrTubePotential) {
		t.Fatalf("got %v, want ErrTubePotential", err)
	}
	if _, err := Generate(80, -1, "Pb", "testdata"); !errors.Is(err, ErrNegativeFiltration) {
		t.Fatalf("got %v, want ErrNegativeFiltration", err)
	}
}
