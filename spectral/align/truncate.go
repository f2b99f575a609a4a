package align

import "github.com/cwbudde/algo-spectral/spectral/record"

// Truncate clips each record's series in place to the inclusive interval
// [r.Min, r.Max], preserving point order. Truncating an already-truncated
// collection to the same bounds is a no-op.
func Truncate(records []*record.Record, r Range) {
	for _, rec := range records {
		out := rec.Series[:0]
		for _, p := range rec.Series {
			if p.X < r.Min || p.X > r.Max {
				continue
			}
			out = append(out, p)
		}
		rec.Series = out
	}
}
