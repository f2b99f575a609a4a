// Package normalize rescales record values with a closed set of per-record
// strategies, selected by [Kind] through a single dispatch point.
package normalize

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

// Kind identifies a value-normalization strategy.
type Kind int

const (
	// KindNone leaves values unchanged.
	KindNone Kind = iota
	// KindMinMax rescales each record's values to [0, 1] using that
	// record's own minimum and maximum.
	KindMinMax
	// KindZScore replaces each record's values with their distance from
	// the record's own mean in population standard deviations.
	KindZScore
)

// String returns the strategy's canonical name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindMinMax:
		return "0-to-1"
	case KindZScore:
		return "Z-Score"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// UnknownStrategyError reports a strategy name outside the closed set.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("normalize: unknown strategy %q", e.Name)
}

// Names lists the accepted strategy names in declaration order.
func Names() []string {
	return []string{KindNone.String(), KindMinMax.String(), KindZScore.String()}
}

// ParseKind resolves a strategy name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "none":
		return KindNone, nil
	case "0-to-1", "minmax", "min-max":
		return KindMinMax, nil
	case "z-score", "zscore":
		return KindZScore, nil
	}
	return 0, &UnknownStrategyError{Name: name}
}

// Apply transforms every record's values in place using strategy k. This
// is the only dispatch point; an out-of-range kind fails with
// [UnknownStrategyError].
func Apply(records []*record.Record, k Kind) error {
	switch k {
	case KindNone:
		return nil
	case KindMinMax:
		for _, rec := range records {
			minMax(rec)
		}
		return nil
	case KindZScore:
		for _, rec := range records {
			zScore(rec)
		}
		return nil
	}
	return &UnknownStrategyError{Name: k.String()}
}

// minMax rescales the record's values so its own minimum maps to exactly 0
// and its own maximum to exactly 1. A constant series maps to all zeros.
func minMax(rec *record.Record) {
	if len(rec.Series) == 0 {
		return
	}

	ys := rec.Series.Ys()
	lo, hi := floats.Min(ys), floats.Max(ys)
	span := hi - lo
	if span == 0 {
		for i := range rec.Series {
			rec.Series[i].Y = 0
		}
		return
	}

	for i := range rec.Series {
		rec.Series[i].Y = (rec.Series[i].Y - lo) / span
	}
}

// zScore centers the record's values on their mean and scales by the
// population standard deviation. A constant series maps to all zeros.
func zScore(rec *record.Record) {
	if len(rec.Series) == 0 {
		return
	}

	ys := rec.Series.Ys()
	mean := stat.Mean(ys, nil)

	var sumSq float64
	for _, y := range ys {
		d := y - mean
		sumSq += d * d
	}
	std := math.Sqrt(sumSq / float64(len(ys)))
	if std == 0 {
		for i := range rec.Series {
			rec.Series[i].Y = 0
		}
		return
	}

	for i := range rec.Series {
		rec.Series[i].Y = (rec.Series[i].Y - mean) / std
	}
}
