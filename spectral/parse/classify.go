package parse

import (
	"math"
	"strconv"
	"strings"
)

// lineKind is the classification of one raw input line.
type lineKind int

const (
	// kindDescriptive is a label/value line of the descriptive section.
	kindDescriptive lineKind = iota
	// kindPair is a valid numeric-pair line.
	kindPair
	// kindBadPair looks like a numeric pair (exactly two tab-separated
	// tokens) but at least one token is not a finite float.
	kindBadPair
)

// classified is the result of classifying one line.
type classified struct {
	kind lineKind
	x, y float64
}

// classify applies the tab-and-float heuristic to one line. A line with
// exactly two tab-separated tokens is a pair candidate; anything else is
// descriptive, including lines whose tab count does not split into two
// tokens.
func classify(line string) classified {
	tokens := strings.Split(line, "\t")
	if len(tokens) != 2 {
		return classified{kind: kindDescriptive}
	}

	x, ok := parseFinite(tokens[0])
	if !ok {
		return classified{kind: kindBadPair}
	}

	y, ok := parseFinite(tokens[1])
	if !ok {
		return classified{kind: kindBadPair}
	}

	return classified{kind: kindPair, x: x, y: y}
}

// parseFinite parses s as a float and rejects NaN and infinities, which
// strconv accepts but the record invariants do not.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
