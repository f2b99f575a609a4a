// Command speclust clusters spectral-library text files.
//
// Usage:
//
//	speclust [flags] -dir <folder>
//
// The folder is scanned recursively for spectral-library files. Every
// file is parsed, all spectra are truncated to their common wavelength
// range and resampled onto the grid of the highest-resolution record,
// the combined matrix is reduced with PCA and clustered with k-means,
// and the per-cluster composition is printed.
//
// Examples:
//
//	speclust -dir ./ecostress
//	speclust -dir ./ecostress -normalize 0-to-1 -clusters 5
//	speclust -dir ./ecostress -category Class -out ./csv -plot clusters.svg
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/cluster/kmeans"
	"github.com/cwbudde/algo-spectral/cluster/pca"
	"github.com/cwbudde/algo-spectral/export"
	"github.com/cwbudde/algo-spectral/scan"
	"github.com/cwbudde/algo-spectral/specplot"
	"github.com/cwbudde/algo-spectral/spectral/align"
	"github.com/cwbudde/algo-spectral/spectral/combine"
	"github.com/cwbudde/algo-spectral/spectral/normalize"
	"github.com/cwbudde/algo-spectral/spectral/parse"
	"github.com/cwbudde/algo-spectral/spectral/record"
)

func main() {
	var (
		dir      = flag.String("dir", "", "folder to scan recursively for spectral files")
		filters  = flag.String("filter", strings.Join(scan.DefaultFilters, ","), "comma-separated filename substrings, all required")
		strategy = flag.String("normalize", "None", "value normalization: None, 0-to-1, Z-Score")
		dims     = flag.Int("dims", 3, "PCA target dimensions")
		clusters = flag.Int("clusters", 4, "k-means cluster count")
		category = flag.String("category", "Type", "descriptive attribute for the composition table")
		seed     = flag.Int64("seed", 1, "k-means seeding RNG seed")
		outDir   = flag.String("out", "", "write per-record CSV files into this directory")
		plotPath = flag.String("plot", "", "write a 2-D cluster scatter to this file (.svg, .png, .pdf)")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "speclust: -dir is required")
		flag.Usage()
		os.Exit(2)
	}

	kind, err := normalize.ParseKind(*strategy)
	if err != nil {
		fail(err)
	}

	paths, err := scan.Dir(*dir, splitFilters(*filters)...)
	if err != nil {
		fail(err)
	}
	if len(paths) == 0 {
		fail(fmt.Errorf("no matching spectral files under %s", *dir))
	}

	records, err := parse.Files(paths)
	if err != nil {
		fail(err)
	}
	for _, rec := range records {
		rec.Normalize()
	}

	r, err := align.CommonRange(records)
	if err != nil {
		fail(err)
	}
	align.Truncate(records, r)
	if err := align.Align(records, record.MaxResolution(records)); err != nil {
		fail(err)
	}
	if err := normalize.Apply(records, kind); err != nil {
		fail(err)
	}

	m, err := combine.Records(records)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%d spectra, common range %g-%g, %d wavelengths\n",
		m.Rows(), r.Min, r.Max, m.Cols())

	if *outDir != "" {
		if _, err := export.Records(records, *outDir); err != nil {
			fail(err)
		}
	}

	reduced, err := pca.Reduce(m.Data, *dims)
	if err != nil {
		fail(err)
	}

	km, err := kmeans.Run(reduced, *clusters, kmeans.WithSeed(*seed))
	if err != nil {
		fail(err)
	}

	comp := kmeans.Composition(km.Labels, *clusters, records, *category)
	printComposition(comp)

	if *plotPath != "" {
		if err := specplot.ClusterScatter(reduced, km.Labels, km.Centers, *plotPath); err != nil {
			fail(err)
		}
	}
}

// printComposition writes one row per cluster with counts per category
// value.
func printComposition(comp []map[string]int) {
	categories := kmeans.Categories(comp)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Cluster")
	for _, c := range categories {
		fmt.Fprintf(w, "\t%s", c)
	}
	fmt.Fprintln(w)

	for i, clusterComp := range comp {
		fmt.Fprintf(w, "%d", i)
		for _, c := range categories {
			fmt.Fprintf(w, "\t%d", clusterComp[c])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func splitFilters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "speclust: %v\n", err)
	os.Exit(1)
}
