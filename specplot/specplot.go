// Package specplot renders cluster scatter plots of reduced spectral
// matrices.
package specplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrDimensions indicates a reduced matrix with fewer than two
	// columns; a scatter needs two.
	ErrDimensions = errors.New("specplot: need at least two reduced dimensions")
	// ErrLabelCount indicates a label slice that does not cover every
	// matrix row.
	ErrLabelCount = errors.New("specplot: label count does not match row count")
)

// ClusterScatter plots the first two columns of reduced as one scatter
// series per cluster, marks the cluster centers with black crosses, and
// saves the figure to path. The image format follows the path extension
// (.svg, .png, .pdf).
func ClusterScatter(reduced mat.Matrix, labels []int, centers mat.Matrix, path string) error {
	rows, cols := reduced.Dims()
	if cols < 2 {
		return ErrDimensions
	}
	if len(labels) != rows {
		return ErrLabelCount
	}

	k := 0
	for _, l := range labels {
		if l+1 > k {
			k = l + 1
		}
	}

	p := plot.New()
	p.Title.Text = "Cluster assignment"
	p.X.Label.Text = "PC 1"
	p.Y.Label.Text = "PC 2"

	for c := 0; c < k; c++ {
		var pts plotter.XYs
		for i := 0; i < rows; i++ {
			if labels[i] != c {
				continue
			}
			pts = append(pts, plotter.XY{X: reduced.At(i, 0), Y: reduced.At(i, 1)})
		}
		if len(pts) == 0 {
			continue
		}

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(c)
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("Cluster %d", c), s)
	}

	if centers != nil {
		cRows, cCols := centers.Dims()
		if cCols >= 2 {
			pts := make(plotter.XYs, cRows)
			for i := 0; i < cRows; i++ {
				pts[i] = plotter.XY{X: centers.At(i, 0), Y: centers.At(i, 1)}
			}
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			s.GlyphStyle.Shape = draw.CrossGlyph{}
			s.GlyphStyle.Color = color.Black
			s.GlyphStyle.Radius = vg.Points(5)
			p.Add(s)
		}
	}

	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, path)
}
