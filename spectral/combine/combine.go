// Package combine assembles an aligned record collection into one numeric
// matrix for downstream dimensionality reduction and clustering.
package combine

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

var (
	// ErrEmptyCollection indicates an empty record collection.
	ErrEmptyCollection = errors.New("combine: empty record collection")
	// ErrUnaligned indicates records whose series lengths differ. Callers
	// must align the collection first; beyond this structural check the
	// shared-grid precondition is not re-validated.
	ErrUnaligned = errors.New("combine: records do not share one wavelength grid")
)

// Matrix is the combined batch: one row per record in input order, one
// column per shared wavelength. Downstream consumers read it without
// modifying it.
type Matrix struct {
	// Data holds the record values, rows indexed by plain record order.
	Data *mat.Dense
	// Wavelengths labels the columns with the shared coordinate grid.
	Wavelengths []float64
	// Sources carries each row's originating file path, in row order.
	Sources []string
}

// Records stacks the aligned collection into a [Matrix]. The first
// record's wavelength grid labels the columns.
func Records(records []*record.Record) (*Matrix, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCollection
	}

	cols := len(records[0].Series)
	if cols == 0 {
		return nil, ErrUnaligned
	}

	data := mat.NewDense(len(records), cols, nil)
	sources := make([]string, len(records))
	for i, rec := range records {
		if len(rec.Series) != cols {
			return nil, ErrUnaligned
		}
		data.SetRow(i, rec.Series.Ys())
		sources[i] = rec.Source
	}

	return &Matrix{
		Data:        data,
		Wavelengths: records[0].Series.Xs(),
		Sources:     sources,
	}, nil
}

// Rows returns the number of records in the matrix.
func (m *Matrix) Rows() int {
	r, _ := m.Data.Dims()
	return r
}

// Cols returns the number of shared wavelengths.
func (m *Matrix) Cols() int {
	_, c := m.Data.Dims()
	return c
}

// Series reconstructs row i as a record series over the shared grid.
func (m *Matrix) Series(i int) record.Series {
	out := make(record.Series, len(m.Wavelengths))
	for j, x := range m.Wavelengths {
		out[j] = record.Point{X: x, Y: m.Data.At(i, j)}
	}
	return out
}
