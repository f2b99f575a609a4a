package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

// Labels of the descriptive rows with special meaning.
const (
	descriptionLabel = "Description"
	xUnitsLabel      = "X Units"
	yUnitsLabel      = "Y Units"
)

// maxFields caps the colon split: label, value, and up to three overflow
// fields. Further colons stay inside the last overflow field.
const maxFields = 5

// MissingDataError reports a file without any numeric-pair line.
type MissingDataError struct {
	Path string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("Numerical coordinate pairs could not be found for %s", e.Path)
}

// MalformedPairError reports a numeric-pair line whose tokens do not both
// parse as finite floats. Line is the raw offending line.
type MalformedPairError struct {
	Path string
	Line string
}

func (e *MalformedPairError) Error() string {
	return fmt.Sprintf("%s contains an invalid or missing value at numerical pair: %s", e.Path, e.Line)
}

// File parses one spectral-library file into a record.
func File(path string) (*record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, path)
}

// Files parses a list of files in order. Parsing stops at the first
// failing file and returns its error alongside a nil collection.
func Files(paths []string) ([]*record.Record, error) {
	records := make([]*record.Record, 0, len(paths))
	for _, path := range paths {
		r, err := File(path)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Read parses the contents of one spectral-library file. path is used only
// for error reporting and as the record's source identifier.
func Read(r io.Reader, path string) (*record.Record, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	// First pass: classify every line. A malformed pair anywhere in the
	// file rejects it; the boundary is the first valid pair line.
	kinds := make([]classified, len(lines))
	firstPair := -1
	for i, line := range lines {
		kinds[i] = classify(line)
		switch kinds[i].kind {
		case kindBadPair:
			return nil, &MalformedPairError{Path: path, Line: line}
		case kindPair:
			if firstPair < 0 {
				firstPair = i
			}
		}
	}
	if firstPair < 0 {
		return nil, &MissingDataError{Path: path}
	}

	// Second pass: descriptive mapping from the lines preceding the
	// numeric section, series from every pair line.
	rec := &record.Record{Source: path}
	for _, line := range lines[:firstPair] {
		name, value := splitDescriptive(line)
		if _, ok := rec.Descriptive.Get(name); ok {
			continue // first occurrence wins
		}
		rec.Descriptive = append(rec.Descriptive, record.Attribute{Name: name, Value: value})
	}

	for i := firstPair; i < len(lines); i++ {
		if kinds[i].kind != kindPair {
			continue
		}
		rec.Series = append(rec.Series, record.Point{X: kinds[i].x, Y: kinds[i].y})
	}

	rec.XLabel, _ = rec.Descriptive.Get(xUnitsLabel)
	rec.YLabel, _ = rec.Descriptive.Get(yUnitsLabel)

	return rec, nil
}

// splitDescriptive splits one descriptive line into its label and value.
// Only the "Description" row merges its overflow fields back into the
// value; every other row keeps the raw value and drops unused overflow.
func splitDescriptive(line string) (name, value string) {
	fields := strings.SplitN(line, ":", maxFields)
	name = fields[0]
	if len(fields) > 1 {
		value = fields[1]
	}
	if name == descriptionLabel {
		value = mergeOverflow(value, fields[2:])
	}
	return name, value
}

// mergeOverflow rejoins description overflow fields onto the value. The
// rules are checked in order, mirroring the source format's inconsistent
// colon usage in free-text descriptions:
//
//  1. first field absent: value unchanged
//  2. second field absent: value + ": " + overflow[0]
//  3. third field absent: the above + ": " + overflow[1]
//  4. all present: the above + ": " + overflow[2]
//
// An empty field counts as absent and ends the merge, matching the
// lookup order of the rules above.
func mergeOverflow(value string, overflow []string) string {
	for _, field := range overflow {
		if field == "" {
			break
		}
		value += ": " + field
	}
	return value
}

// readLines collects all input lines, tolerating CRLF line endings.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
