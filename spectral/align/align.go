package align

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

var (
	// ErrReferenceIndex indicates an out-of-range reference record index.
	ErrReferenceIndex = errors.New("align: reference index out of range")
	// ErrEmptyReference indicates a reference record without data points.
	ErrEmptyReference = errors.New("align: reference record has no data points")
)

// DisjointDomainError reports a record whose wavelength domain has no
// overlap with the reference grid. Resampling such a record would produce
// nothing but extrapolation artifacts, so it is rejected instead.
type DisjointDomainError struct {
	Source string
}

func (e *DisjointDomainError) Error() string {
	return fmt.Sprintf("align: record %s shares no wavelengths with the reference grid", e.Source)
}

// Align resamples every record in the collection onto the wavelength grid
// of records[ref], in place. Records are assumed normalized (sorted,
// unique wavelengths) and truncated to a common range beforehand.
//
// Grid points inside a record's domain are filled by linear interpolation
// between the record's bracketing points; grid points outside it extend
// the nearest known value. Wavelengths present only in the record itself
// are discarded, so afterwards every record shares the identical
// wavelength sequence. Aligning an already-aligned collection to the same
// reference leaves every series unchanged.
func Align(records []*record.Record, ref int) error {
	if ref < 0 || ref >= len(records) {
		return ErrReferenceIndex
	}

	grid := records[ref].Series.Xs()
	if len(grid) == 0 {
		return ErrEmptyReference
	}

	// Validate overlap for the whole batch before mutating anything.
	for _, rec := range records {
		min, max, ok := rec.Bounds()
		if !ok || max < grid[0] || min > grid[len(grid)-1] {
			return &DisjointDomainError{Source: rec.Source}
		}
	}

	for _, rec := range records {
		rec.Series = resample(rec.Series, grid)
	}

	return nil
}

// resample evaluates the series at every grid wavelength. The series must
// be sorted ascending by wavelength.
func resample(s record.Series, grid []float64) record.Series {
	out := make(record.Series, len(grid))
	for i, x := range grid {
		out[i] = record.Point{X: x, Y: valueAt(s, x)}
	}
	return out
}

// valueAt linearly interpolates the series value at x. Outside the series
// domain the nearest endpoint value is extended.
func valueAt(s record.Series, x float64) float64 {
	n := len(s)
	if x <= s[0].X {
		return s[0].Y
	}
	if x >= s[n-1].X {
		return s[n-1].Y
	}

	// First point with X >= x; its predecessor brackets x from below.
	hi := sort.Search(n, func(i int) bool { return s[i].X >= x })
	if s[hi].X == x {
		return s[hi].Y
	}

	lo := hi - 1
	t := (x - s[lo].X) / (s[hi].X - s[lo].X)
	return s[lo].Y + t*(s[hi].Y-s[lo].Y)
}
