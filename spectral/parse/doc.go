// Package parse turns one spectral-library text file into a
// [record.Record].
//
// The input format carries a descriptive section followed by a numeric
// section, with no declared boundary between them:
//
//   - descriptive lines use ":" as field separator, up to four fields
//     (label, value, and up to three overflow fields caused by free-text
//     descriptions that themselves contain colons)
//   - numeric-pair lines contain exactly one literal tab separating two
//     floating-point tokens
//
// The boundary is detected, not declared: the first line that splits into
// exactly two tab-separated tokens, both parseable as finite floats, marks
// the start of the numeric section. The classifier runs as an explicit
// first pass over all lines so the heuristic stays auditable and testable
// in isolation.
//
// Failures are per file and descriptive: [MissingDataError] when no
// numeric section exists, [MalformedPairError] when a candidate pair line
// carries a non-numeric token.
package parse
