// Package pca reduces a combined spectral matrix to a small number of
// principal-component dimensions.
package pca

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDimensions indicates a target dimension count outside
	// [1, min(rows, cols)].
	ErrDimensions = errors.New("pca: target dimensions out of range")
	// ErrDecomposition indicates that the underlying singular value
	// decomposition did not converge.
	ErrDecomposition = errors.New("pca: principal-component decomposition failed")
)

// Reduce projects the rows of m onto its first dims principal components.
// The result has the same row count as m and dims columns. m is not
// modified.
func Reduce(m mat.Matrix, dims int) (*mat.Dense, error) {
	rows, cols := m.Dims()
	max := rows
	if cols < max {
		max = cols
	}
	if dims < 1 || dims > max {
		return nil, ErrDimensions
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, ErrDecomposition
	}

	var vec mat.Dense
	pc.VectorsTo(&vec)

	// Project the mean-centered data onto the leading components.
	centered := mat.NewDense(rows, cols, nil)
	means := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		means[j] = stat.Mean(col, nil)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			centered.Set(i, j, m.At(i, j)-means[j])
		}
	}

	var proj mat.Dense
	proj.Mul(centered, vec.Slice(0, cols, 0, dims))

	return &proj, nil
}
