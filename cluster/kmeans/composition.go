package kmeans

import (
	"sort"
	"strings"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

// UnspecifiedCategory is tallied for records missing the chosen
// descriptive attribute.
const UnspecifiedCategory = "None specified"

// Composition tallies, per cluster, how many member records carry each
// value of the chosen descriptive attribute. Values are upper-cased for
// the tally; records without the attribute count under
// [UnspecifiedCategory]. The result has one map per cluster, indexed by
// label.
func Composition(labels []int, k int, records []*record.Record, category string) []map[string]int {
	comp := make([]map[string]int, k)
	for c := range comp {
		comp[c] = make(map[string]int)
	}

	for i, rec := range records {
		if i >= len(labels) {
			break
		}
		value, ok := rec.Descriptive.Get(category)
		if !ok {
			value = UnspecifiedCategory
		} else {
			value = strings.ToUpper(value)
		}
		comp[labels[i]][value]++
	}

	return comp
}

// Categories returns the sorted union of category values appearing in a
// composition tally.
func Categories(comp []map[string]int) []string {
	seen := make(map[string]struct{})
	for _, clusterComp := range comp {
		for value := range clusterComp {
			seen[value] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for value := range seen {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
