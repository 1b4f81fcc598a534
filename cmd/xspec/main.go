// Command xspec generates filtered x-ray tube spectra and prints them as
// energy/fluence tables.
//
// Usage:
//
//	xspec [flags]
//
// The spectrum is produced by the TASMIP tungsten-anode model by default;
// -model kramers switches to the analytic Kramers shape. Attenuation tables
// for aluminium and copper filters are bundled with the command; -data points
// it at a directory with additional <material>.txt tables in the same format.
//
// Examples:
//
//	xspec -kvp 120 -mm 2.5
//	xspec -kvp 80 -mm 1 -material Cu -stats
//	xspec -model kramers -kvp 100 -every 10
package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-xray/attenuation"
	"github.com/cwbudde/algo-xray/spectrum"
	"github.com/cwbudde/algo-xray/spectrum/kramers"
	"github.com/cwbudde/algo-xray/spectrum/tasmip"
	"github.com/cwbudde/algo-xray/stats/beam"
)

//go:embed data
var bundled embed.FS

func main() {
	kvp := flag.Int("kvp", 80, "tube potential in kV (1 to 150)")
	mm := flag.Float64("mm", 0, "filtration thickness in mm")
	material := flag.String("material", "Al", "filter material name")
	dataDir := flag.String("data", "", "directory with <material>.txt attenuation tables (default: bundled)")
	model := flag.String("model", "tasmip", "spectrum model: tasmip or kramers")
	stats := flag.Bool("stats", false, "append beam quality statistics")
	every := flag.Int("every", 1, "print every Nth energy bin")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xspec [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates a filtered x-ray tube spectrum and prints it as a table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xspec -kvp 120 -mm 2.5\n")
		fmt.Fprintf(os.Stderr, "  xspec -kvp 80 -mm 1 -material Cu -stats\n")
		fmt.Fprintf(os.Stderr, "  xspec -model kramers -kvp 100 -every 10\n")
	}
	flag.Parse()

	if *every < 1 {
		fail(fmt.Errorf("-every must be at least 1, got %d", *every))
	}

	table, err := loadTable(*dataDir, *material)
	if err != nil {
		fail(err)
	}

	bins, err := generate(*model, *kvp, *mm, table)
	if err != nil {
		fail(err)
	}

	if err := printSpectrum(bins, *every); err != nil {
		fail(err)
	}
	if *stats {
		if err := printStats(bins, table); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// loadTable reads the material table from dir, or from the data bundled with
// the command when dir is empty.
func loadTable(dir, material string) (*attenuation.Table, error) {
	if dir != "" {
		return attenuation.LoadDir(dir, material)
	}
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		return nil, err
	}
	return attenuation.Load(sub, material)
}

func generate(model string, kvp int, mm float64, prov attenuation.Provider) ([]float64, error) {
	switch model {
	case "tasmip":
		return tasmip.GenerateWith(kvp, mm, prov)
	case "kramers":
		return kramers.Generate(kvp, mm, prov)
	default:
		return nil, fmt.Errorf("unknown model %q (want tasmip or kramers)", model)
	}
}

func printSpectrum(bins []float64, every int) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Energy [keV]\tFluence [1/keV]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------------\t---------------\n"); err != nil {
		return err
	}
	for n := 0; n < len(bins); n += every {
		if _, err := fmt.Fprintf(tw, "%.0f\t%.6e\n", spectrum.BinEnergyKeV(n), bins[n]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printStats(bins []float64, prov attenuation.Provider) error {
	s := beam.Calculate(bins)
	hvl1, err := beam.HVL(bins, prov)
	if err != nil {
		return err
	}
	quarter, err := beam.HVLAt(bins, prov, 0.25)
	if err != nil {
		return err
	}
	homogeneity, err := beam.HomogeneityCoefficient(bins, prov)
	if err != nil {
		return err
	}
	effective, err := beam.EffectiveEnergy(bins, prov)
	if err != nil {
		return err
	}

	rows := []struct {
		label, value string
	}{
		{"Mean energy", fmt.Sprintf("%.2f keV", s.MeanEnergy)},
		{"Median energy", fmt.Sprintf("%.2f keV", s.MedianEnergy)},
		{"Peak fluence", fmt.Sprintf("%.6e at %.0f keV", s.Peak, s.PeakEnergy)},
		{"Spread", fmt.Sprintf("%.2f keV", s.Spread)},
		{"First HVL", fmt.Sprintf("%.4f mm", hvl1)},
		{"Second HVL", fmt.Sprintf("%.4f mm", quarter-hvl1)},
		{"Homogeneity", fmt.Sprintf("%.4f", homogeneity)},
		{"Effective energy", fmt.Sprintf("%.2f keV", effective)},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.label, r.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
