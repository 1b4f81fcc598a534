package attenuation

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

func loadAl(t *testing.T) *Table {
	t.Helper()
	tab, err := LoadDir("testdata", "Al")
	if err != nil {
		t.Fatalf("LoadDir(testdata, Al) failed: %v", err)
	}
	return tab
}

func TestLoadDir(t *testing.T) {
	tab := loadAl(t)
	if got := tab.Material(); got != "Al" {
		t.Errorf("Material() = %q, want %q", got, "Al")
	}
	if got := tab.Density(); math.Abs(got-2.699) > 1e-12 {
		t.Errorf("Density() = %g, want 2.699", got)
	}
	lo, hi := tab.EnergyRange()
	if lo != 1e-3 || hi != 20 {
		t.Errorf("EnergyRange() = [%g, %g], want [0.001, 20]", lo, hi)
	}
}

func TestLinearAttenuationTabulated(t *testing.T) {
	tab := loadAl(t)
	cases := []struct {
		energyMeV float64
		muRho     float64
	}{
		{1e-2, 2.623e+01},
		{5e-2, 3.681e-01},
		{1e-1, 1.704e-01},
		{1.5e-1, 1.378e-01},
		{20, 2.168e-02},
	}
	for _, c := range cases {
		got, err := tab.LinearAttenuation(c.energyMeV)
		if err != nil {
			t.Fatalf("LinearAttenuation(%g) failed: %v", c.energyMeV, err)
		}
		want := c.muRho * 2.699
		if math.Abs(got-want) > 1e-9*want {
			t.Errorf("LinearAttenuation(%g) = %g, want %g", c.energyMeV, got, want)
		}
	}
}

func TestLinearAttenuationInterpolated(t *testing.T) {
	tab := loadAl(t)

	got, err := tab.LinearAttenuation(0.055)
	if err != nil {
		t.Fatalf("LinearAttenuation(0.055) failed: %v", err)
	}
	// Log-log between the 50 and 60 keV rows.
	want := 0.85753
	if math.Abs(got-want) > 1e-3*want {
		t.Errorf("LinearAttenuation(0.055) = %g, want about %g", got, want)
	}

	lo := 0.2778 * 2.699
	hi := 0.3681 * 2.699
	if got <= lo || got >= hi {
		t.Errorf("LinearAttenuation(0.055) = %g, want inside (%g, %g)", got, lo, hi)
	}
}

// A pure power law is reproduced exactly by log-log interpolation, which
// pins the interpolation rule down independent of any reference table.
func TestLinearAttenuationPowerLaw(t *testing.T) {
	fsys := fstest.MapFS{
		"X.txt": {Data: []byte("density 1\n0.1 100\n10 0.01\n")},
	}
	tab, err := Load(fsys, "X")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := tab.LinearAttenuation(1.0)
	if err != nil {
		t.Fatalf("LinearAttenuation(1) failed: %v", err)
	}
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("LinearAttenuation(1) = %g, want 1", got)
	}
}

func TestAbsorptionEdge(t *testing.T) {
	tab := loadAl(t)

	// An exact query on the edge energy returns the below-edge row.
	atEdge, err := tab.LinearAttenuation(1.5596e-3)
	if err != nil {
		t.Fatalf("LinearAttenuation(edge) failed: %v", err)
	}
	want := 3.621e+02 * 2.699
	if math.Abs(atEdge-want) > 1e-9*want {
		t.Errorf("LinearAttenuation(edge) = %g, want below-edge value %g", atEdge, want)
	}

	// Just above the edge the interpolation uses the above-edge row, so the
	// coefficient jumps by an order of magnitude.
	above, err := tab.LinearAttenuation(1.56e-3)
	if err != nil {
		t.Fatalf("LinearAttenuation(above edge) failed: %v", err)
	}
	if above < 5*atEdge {
		t.Errorf("LinearAttenuation just above edge = %g, want well above %g", above, atEdge)
	}

	// Just below the edge stays on the below-edge branch.
	below, err := tab.LinearAttenuation(1.55e-3)
	if err != nil {
		t.Fatalf("LinearAttenuation(below edge) failed: %v", err)
	}
	if lo, hi := 3.621e+02*2.699, 4.022e+02*2.699; below <= lo || below >= hi {
		t.Errorf("LinearAttenuation just below edge = %g, want inside (%g, %g)", below, lo, hi)
	}
}

func TestEnergyRangeError(t *testing.T) {
	tab := loadAl(t)
	for _, e := range []float64{0, 0.5e-3, 21, math.NaN()} {
		if _, err := tab.LinearAttenuation(e); !errors.Is(err, ErrEnergyRange) {
			t.Errorf("LinearAttenuation(%g): got %v, want ErrEnergyRange", e, err)
		}
	}
}

func TestMaterialNotFound(t *testing.T) {
	if _, err := LoadDir("testdata", "Pb"); !errors.Is(err, ErrMaterialNotFound) {
		t.Errorf("LoadDir(testdata, Pb): got %v, want ErrMaterialNotFound", err)
	}
}

func TestLoadBadTable(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no density", "0.01 26.23\n0.02 3.441\n"},
		{"bad density", "density nope\n0.01 26.23\n0.02 3.441\n"},
		{"negative density", "density -1\n0.01 26.23\n0.02 3.441\n"},
		{"bad row", "density 2.699\n0.01 26.23\n0.02 x\n"},
		{"one column", "density 2.699\n0.01\n"},
		{"negative mu", "density 2.699\n0.01 26.23\n0.02 -3.441\n"},
		{"nan energy", "density 2.699\nNaN 26.23\n0.02 3.441\n"},
		{"decreasing energies", "density 2.699\n0.02 3.441\n0.01 26.23\n"},
		{"single row", "density 2.699\n0.01 26.23\n"},
		{"empty", "# nothing here\n"},
	}
	for _, c := range cases {
		fsys := fstest.MapFS{"X.txt": {Data: []byte(c.data)}}
		if _, err := Load(fsys, "X"); !errors.Is(err, ErrBadTable) {
			t.Errorf("%s: got %v, want ErrBadTable", c.name, err)
		}
	}
}

func TestProviderFunc(t *testing.T) {
	p := ProviderFunc(func(e float64) (float64, error) {
		return 2 * e, nil
	})
	got, err := p.LinearAttenuation(3)
	if err != nil || got != 6 {
		t.Errorf("ProviderFunc passthrough: got (%g, %v), want (6, nil)", got, err)
	}

	fail := ProviderFunc(func(e float64) (float64, error) {
		return 0, ErrEnergyRange
	})
	if _, err := fail.LinearAttenuation(1); !errors.Is(err, ErrEnergyRange) {
		t.Errorf("ProviderFunc error passthrough: got %v", err)
	}
}
