package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleFile = `Name:Olivine
Type:mineral
Class:Silicate
Description:Olivine:Fe-rich:lab sample
X Units: Wavelength (micrometers)
Y Units:Reflectance (percent)
0.4	12.5
0.5	13.0
0.6	12.75
`

func TestReadWellFormedFile(t *testing.T) {
	rec, err := Read(strings.NewReader(sampleFile), "olivine.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if rec.Source != "olivine.txt" {
		t.Fatalf("Source = %q, want olivine.txt", rec.Source)
	}
	if len(rec.Series) != 3 {
		t.Fatalf("series length = %d, want 3", len(rec.Series))
	}
	if rec.Series[0].X != 0.4 || rec.Series[0].Y != 12.5 {
		t.Fatalf("series[0] = %v, want {0.4 12.5}", rec.Series[0])
	}
	if rec.XLabel != " Wavelength (micrometers)" {
		t.Fatalf("XLabel = %q", rec.XLabel)
	}
	if rec.YLabel != "Reflectance (percent)" {
		t.Fatalf("YLabel = %q", rec.YLabel)
	}
	if v, _ := rec.Descriptive.Get("Name"); v != "Olivine" {
		t.Fatalf("Name = %q, want Olivine", v)
	}
}

func TestDescriptionOverflowMerge(t *testing.T) {
	for _, tc := range []struct {
		name string
		line string
		want string
	}{
		{name: "no overflow", line: "Description:Olivine", want: "Olivine"},
		{name: "one field", line: "Description:Olivine:Fe-rich", want: "Olivine: Fe-rich"},
		{name: "two fields", line: "Description:Olivine:Fe-rich:weathered", want: "Olivine: Fe-rich: weathered"},
		{name: "three fields", line: "Description:Olivine:Fe-rich:lab sample", want: "Olivine: Fe-rich: lab sample"},
		{name: "empty field ends merge", line: "Description:Olivine::ignored", want: "Olivine"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.line + "\n1.0\t2.0\n"
			rec, err := Read(strings.NewReader(input), "f.txt")
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			got, ok := rec.Descriptive.Get("Description")
			if !ok || got != tc.want {
				t.Fatalf("Description = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestThreeFieldMergeExample(t *testing.T) {
	rec, err := Read(strings.NewReader("Description:Olivine:Fe-rich:lab sample\n0.4\t1.0\n"), "f.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got, _ := rec.Descriptive.Get("Description"); got != "Olivine: Fe-rich: lab sample" {
		t.Fatalf("merged description = %q", got)
	}
}

func TestNonDescriptionRowsKeepRawValue(t *testing.T) {
	rec, err := Read(strings.NewReader("Owner:NASA:JPL:extra\n0.4\t1.0\n"), "f.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	// Overflow is dropped, not merged, for rows other than Description.
	if got, _ := rec.Descriptive.Get("Owner"); got != "NASA" {
		t.Fatalf("Owner = %q, want NASA", got)
	}
}

func TestMissingNumericSection(t *testing.T) {
	_, err := Read(strings.NewReader("Name:Olivine\nType:mineral\n"), "empty.txt")

	var missing *MissingDataError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingDataError", err)
	}
	want := "Numerical coordinate pairs could not be found for empty.txt"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestMalformedPair(t *testing.T) {
	input := "Name:Olivine\n1.2\tabc\n"
	_, err := Read(strings.NewReader(input), "bad.txt")

	var malformed *MalformedPairError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedPairError", err)
	}
	want := "bad.txt contains an invalid or missing value at numerical pair: 1.2\tabc"
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}

func TestNonFinitePairRejected(t *testing.T) {
	for _, line := range []string{"0.4\tNaN", "Inf\t1.0", "0.4\t+Inf"} {
		if _, err := Read(strings.NewReader(line+"\n"), "f.txt"); err == nil {
			t.Fatalf("line %q accepted, want MalformedPairError", line)
		}
	}
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		line string
		kind lineKind
	}{
		{line: "0.4\t12.5", kind: kindPair},
		{line: "-1e3\t2.5e-2", kind: kindPair},
		{line: "Name:Olivine", kind: kindDescriptive},
		{line: "a\tb\tc", kind: kindDescriptive}, // three tokens, not a pair candidate
		{line: "", kind: kindDescriptive},
		{line: "1.2\tabc", kind: kindBadPair},
		{line: "\t", kind: kindBadPair}, // two empty tokens
	} {
		if got := classify(tc.line); got.kind != tc.kind {
			t.Fatalf("classify(%q) = %v, want %v", tc.line, got.kind, tc.kind)
		}
	}
}

func TestDescriptiveStopsAtNumericSection(t *testing.T) {
	// A descriptive-looking line after the boundary is ignored.
	input := "Name:Olivine\n0.4\t1.0\nStray:line\n0.5\t2.0\n"
	rec, err := Read(strings.NewReader(input), "f.txt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if _, ok := rec.Descriptive.Get("Stray"); ok {
		t.Fatal("attribute collected after numeric boundary")
	}
	if len(rec.Series) != 2 {
		t.Fatalf("series length = %d, want 2", len(rec.Series))
	}
}

func TestFilesStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")

	if err := os.WriteFile(good, []byte(sampleFile), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("Name:x\n1.0\toops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := Files([]string{good, bad})
	if err == nil {
		t.Fatal("Files succeeded, want error from bad.txt")
	}
	if records != nil {
		t.Fatalf("records = %v, want nil on failure", records)
	}

	records, err = Files([]string{good})
	if err != nil || len(records) != 1 {
		t.Fatalf("Files(good) = (%d records, %v), want 1 record", len(records), err)
	}
}
