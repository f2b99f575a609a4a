package align

import (
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/spectral/record"
)

func benchmarkAlign(b *testing.B, nRecords, nPoints int) {
	base := make([]*record.Record, nRecords)
	for i := range base {
		// Slightly different grids per record force real interpolation.
		base[i] = testutil.LinearRecord("bench", 0.4, 2.5, nPoints+i, 1, 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		records := make([]*record.Record, nRecords)
		for j, r := range base {
			records[j] = &record.Record{Source: r.Source, Series: append(record.Series(nil), r.Series...)}
		}
		b.StartTimer()

		if err := Align(records, record.MaxResolution(records)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAlign10x500(b *testing.B)  { benchmarkAlign(b, 10, 500) }
func BenchmarkAlign50x2000(b *testing.B) { benchmarkAlign(b, 50, 2000) }
