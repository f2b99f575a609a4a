// Package testutil provides deterministic spectral fixtures and tolerance
// helpers shared by the package tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

// LinearRecord builds a record sampling y = slope*x + offset on a uniform
// grid of n points over [min, max].
func LinearRecord(source string, min, max float64, n int, slope, offset float64) *record.Record {
	rec := &record.Record{Source: source, XLabel: record.WavelengthLabel, YLabel: "Reflectance (percent)"}
	step := (max - min) / float64(n-1)
	for i := 0; i < n; i++ {
		x := min + step*float64(i)
		rec.Series = append(rec.Series, record.Point{X: x, Y: slope*x + offset})
	}
	return rec
}

// SineRecord builds a record sampling a sine of the given period on a
// uniform grid of n points over [min, max].
func SineRecord(source string, min, max float64, n int, period float64) *record.Record {
	rec := &record.Record{Source: source, XLabel: record.WavelengthLabel, YLabel: "Emissivity"}
	step := (max - min) / float64(n-1)
	for i := 0; i < n; i++ {
		x := min + step*float64(i)
		rec.Series = append(rec.Series, record.Point{X: x, Y: math.Sin(2 * math.Pi * x / period)})
	}
	return rec
}

// SampleFileText renders a minimal well-formed spectral-library file with
// the given descriptive name and series.
func SampleFileText(name string, series record.Series) string {
	out := "Name:" + name + "\n" +
		"Description:" + name + ":synthetic fixture\n" +
		"X Units:Wavelength (micrometers)\n" +
		"Y Units:Reflectance (percent)\n"
	for _, p := range series {
		out += fmt.Sprintf("%g\t%g\n", p.X, p.Y)
	}
	return out
}
