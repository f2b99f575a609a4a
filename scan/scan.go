// Package scan discovers spectral-library files under a directory tree.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultFilters match the NASA ECOSTRESS thermal-infrared Nicolet
// spectrum files the pipeline is built around. Every filter substring
// must appear in a filename for it to be selected.
var DefaultFilters = []string{"tir", "nicolet", "spectrum", ".txt"}

// Dir walks root recursively and returns the paths of all regular files
// whose names contain every filter substring, in lexical walk order.
// With no filters, all regular files are returned.
func Dir(root string, filters ...string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matches(d.Name(), filters) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func matches(name string, filters []string) bool {
	for _, f := range filters {
		if !strings.Contains(name, f) {
			return false
		}
	}
	return true
}
