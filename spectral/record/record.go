// Package record defines the spectral record entity shared by every
// pipeline stage: an ordered descriptive-attribute mapping plus an ordered
// wavelength/value series, tagged with the originating file path.
package record

import "sort"

// WavelengthLabel is the canonical name of the coordinate column after
// [Record.Normalize]. Input files carry inconsistent unit labels (for
// example "Wavelength (micrometers)" with and without the plural s, often
// with a leading space), so the first column is always renamed.
const WavelengthLabel = "wavelength"

// Point is one coordinate/value pair of a spectral series.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered sequence of coordinate/value pairs. After
// [Record.Normalize] the coordinates are unique and sorted ascending.
type Series []Point

// Xs returns a copy of the coordinate column.
func (s Series) Xs() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.X
	}
	return out
}

// Ys returns a copy of the value column.
func (s Series) Ys() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Y
	}
	return out
}

// Bounds returns the minimum and maximum coordinate of the series.
// ok is false for an empty series.
func (s Series) Bounds() (min, max float64, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}

	min, max = s[0].X, s[0].X
	for _, p := range s[1:] {
		if p.X < min {
			min = p.X
		}
		if p.X > max {
			max = p.X
		}
	}

	return min, max, true
}

// Attribute is one descriptive name/value pair.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered descriptive mapping. Names are unique within one
// record once parsing completes; file order is preserved.
type Attributes []Attribute

// Get returns the value for name and whether it is present.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value for name, or appends a new attribute if name is
// not present yet.
func (a *Attributes) Set(name, value string) {
	for i, attr := range *a {
		if attr.Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Record is one parsed input file: descriptive metadata, the numeric
// series, and the source path retained for traceability and output naming.
type Record struct {
	Descriptive Attributes
	Series      Series
	Source      string

	// Column labels taken from the "X Units" and "Y Units" rows.
	// XLabel becomes [WavelengthLabel] after Normalize.
	XLabel string
	YLabel string
}

// Normalize re-indexes the series by its coordinate column: the column is
// renamed to [WavelengthLabel], the series is sorted ascending by
// coordinate, and duplicate coordinates are collapsed keeping the first
// occurrence. Values are never changed.
func (r *Record) Normalize() {
	r.XLabel = WavelengthLabel

	sort.SliceStable(r.Series, func(i, j int) bool {
		return r.Series[i].X < r.Series[j].X
	})

	out := r.Series[:0]
	for _, p := range r.Series {
		if len(out) > 0 && p.X == out[len(out)-1].X {
			continue
		}
		out = append(out, p)
	}
	r.Series = out
}

// Bounds returns the coordinate extent of the record's series.
func (r *Record) Bounds() (min, max float64, ok bool) {
	return r.Series.Bounds()
}

// MaxResolution returns the index of the record with the most data points.
// It is the default reference choice for alignment. Returns 0 for an empty
// collection.
func MaxResolution(records []*Record) int {
	best, bestPts := 0, 0
	for i, r := range records {
		if len(r.Series) > bestPts {
			best, bestPts = i, len(r.Series)
		}
	}
	return best
}
