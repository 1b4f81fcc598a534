package attenuation

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Table holds the tabulated attenuation data for one material.
// It implements Provider.
type Table struct {
	material string
	density  float64   // g/cm³
	energy   []float64 // MeV, non-decreasing
	muRho    []float64 // μ/ρ in cm²/g, aligned with energy
}

var _ Provider = (*Table)(nil)

// LoadDir loads the table for material from <dir>/<material>.txt.
func LoadDir(dir, material string) (*Table, error) {
	return Load(os.DirFS(dir), material)
}

// Load loads the table for material from <material>.txt in fsys.
// The file format is described in the package documentation.
func Load(fsys fs.FS, material string) (*Table, error) {
	name := material + ".txt"
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrMaterialNotFound, material)
		}
		return nil, fmt.Errorf("attenuation: open %s: %w", name, err)
	}
	defer f.Close()

	t := &Table{material: material}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if t.density == 0 {
			if len(fields) != 2 || fields[0] != "density" {
				return nil, fmt.Errorf("%w: %s line %d: expected density line", ErrBadTable, name, line)
			}
			d, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || !(d > 0) || math.IsInf(d, 1) {
				return nil, fmt.Errorf("%w: %s line %d: bad density %q", ErrBadTable, name, line, fields[1])
			}
			t.density = d
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s line %d: expected energy and mu/rho columns", ErrBadTable, name, line)
		}
		e, err1 := strconv.ParseFloat(fields[0], 64)
		m, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %s line %d: bad row %q", ErrBadTable, name, line, text)
		}
		// The log-log interpolation needs strictly positive finite values.
		if !(e > 0) || !(m > 0) || math.IsInf(e, 1) || math.IsInf(m, 1) {
			return nil, fmt.Errorf("%w: %s line %d: values must be positive and finite", ErrBadTable, name, line)
		}
		if n := len(t.energy); n > 0 && e < t.energy[n-1] {
			return nil, fmt.Errorf("%w: %s line %d: energies must be non-decreasing", ErrBadTable, name, line)
		}
		t.energy = append(t.energy, e)
		t.muRho = append(t.muRho, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("attenuation: read %s: %w", name, err)
	}
	if len(t.energy) < 2 {
		return nil, fmt.Errorf("%w: %s: need at least two data rows", ErrBadTable, name)
	}
	return t, nil
}

// LinearAttenuation returns μ in cm⁻¹ at the given photon energy in MeV.
// Energies between tabulated rows are interpolated log-log; an exact
// tabulated energy returns the tabulated value, the below-edge row when the
// energy sits on an absorption edge.
func (t *Table) LinearAttenuation(energyMeV float64) (float64, error) {
	n := len(t.energy)
	if !(energyMeV >= t.energy[0]) || energyMeV > t.energy[n-1] {
		return 0, fmt.Errorf("%w: %s: %g MeV outside [%g, %g]",
			ErrEnergyRange, t.material, energyMeV, t.energy[0], t.energy[n-1])
	}
	i := sort.SearchFloat64s(t.energy, energyMeV)
	if t.energy[i] == energyMeV {
		return t.muRho[i] * t.density, nil
	}
	// energy[i-1] < energyMeV < energy[i], so the span has nonzero width
	// even across an absorption edge pair.
	x0, x1 := math.Log(t.energy[i-1]), math.Log(t.energy[i])
	y0, y1 := math.Log(t.muRho[i-1]), math.Log(t.muRho[i])
	x := math.Log(energyMeV)
	y := y0 + (y1-y0)*(x-x0)/(x1-x0)
	return math.Exp(y) * t.density, nil
}

// Material returns the material name the table was loaded for.
func (t *Table) Material() string { return t.material }

// Density returns the material density in g/cm³.
func (t *Table) Density() float64 { return t.density }

// EnergyRange returns the lowest and highest tabulated energies in MeV.
func (t *Table) EnergyRange() (lo, hi float64) {
	return t.energy[0], t.energy[len(t.energy)-1]
}
