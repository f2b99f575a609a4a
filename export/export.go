// Package export writes processed records back out as per-record
// coordinate/value tables.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectral/spectral/record"
)

// Record writes one record's series as a CSV file into dir, named after
// the record's source file with its extension replaced by ".csv". The
// header row carries the record's column labels. Returns the written
// path.
func Record(rec *record.Record, dir string) (string, error) {
	path := filepath.Join(dir, outputName(rec.Source))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{xLabel(rec), yLabel(rec)}); err != nil {
		f.Close()
		return "", err
	}
	for _, p := range rec.Series {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", err
	}

	return path, f.Close()
}

// Records writes every record in the collection into dir, one file per
// record. It stops at the first failure and returns the paths written so
// far.
func Records(records []*record.Record, dir string) ([]string, error) {
	paths := make([]string, 0, len(records))
	for _, rec := range records {
		path, err := Record(rec, dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputName maps a source path to its output filename: the base name
// with the extension replaced by ".csv".
func outputName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"
}

func xLabel(rec *record.Record) string {
	if rec.XLabel != "" {
		return rec.XLabel
	}
	return record.WavelengthLabel
}

func yLabel(rec *record.Record) string {
	if rec.YLabel != "" {
		return rec.YLabel
	}
	return "value"
}
