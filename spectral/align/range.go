package align

import (
	"errors"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

var (
	// ErrEmptyCollection indicates an empty record collection.
	ErrEmptyCollection = errors.New("align: empty record collection")
	// ErrNoCommonRange indicates that the records' wavelength extents have
	// an empty intersection. The batch has no usable shared domain.
	ErrNoCommonRange = errors.New("align: records share no common wavelength range")
)

// Range is an inclusive wavelength interval.
type Range struct {
	Min float64
	Max float64
}

// CommonRange computes the intersection of the wavelength extents of all
// records: the highest per-record minimum and the lowest per-record
// maximum. The result does not depend on record order.
//
// The intersection must be non-degenerate: a shared extent whose minimum
// equals its maximum counts as no overlap and returns [ErrNoCommonRange].
// A record with an empty series has no extent and likewise empties the
// intersection.
func CommonRange(records []*record.Record) (Range, error) {
	if len(records) == 0 {
		return Range{}, ErrEmptyCollection
	}

	highestMin, lowestMax, ok := records[0].Bounds()
	if !ok {
		return Range{}, ErrNoCommonRange
	}

	for _, r := range records[1:] {
		min, max, ok := r.Bounds()
		if !ok {
			return Range{}, ErrNoCommonRange
		}
		if min > highestMin {
			highestMin = min
		}
		if max < lowestMax {
			lowestMax = max
		}
	}

	if highestMin >= lowestMax {
		return Range{}, ErrNoCommonRange
	}

	return Range{Min: highestMin, Max: lowestMax}, nil
}
