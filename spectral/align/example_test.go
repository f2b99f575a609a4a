package align_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/align"
	"github.com/cwbudde/algo-spectral/spectral/record"
)

func Example() {
	fine := &record.Record{Source: "fine", Series: record.Series{
		{X: 400, Y: 0.10}, {X: 450, Y: 0.12}, {X: 500, Y: 0.15},
		{X: 550, Y: 0.16}, {X: 600, Y: 0.18},
	}}
	coarse := &record.Record{Source: "coarse", Series: record.Series{
		{X: 450, Y: 0.30}, {X: 575, Y: 0.40}, {X: 700, Y: 0.50},
	}}
	records := []*record.Record{fine, coarse}

	r, _ := align.CommonRange(records)
	align.Truncate(records, r)
	_ = align.Align(records, record.MaxResolution(records))

	fmt.Printf("range %g-%g, %d and %d points\n",
		r.Min, r.Max, len(fine.Series), len(coarse.Series))
	// Output:
	// range 450-600, 4 and 4 points
}
