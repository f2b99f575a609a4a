// Package kmeans clusters the rows of a reduced spectral matrix with
// Lloyd's algorithm and k-means++ seeding.
package kmeans

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrClusterCount indicates a cluster count outside [1, rows].
	ErrClusterCount = errors.New("kmeans: cluster count out of range")
)

const (
	defaultMaxIterations = 300
	defaultSeed          = 1
)

type config struct {
	maxIterations int
	seed          int64
}

// Option configures the clustering run.
type Option func(*config)

// WithMaxIterations caps the number of Lloyd iterations.
func WithMaxIterations(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIterations = n
		}
	}
}

// WithSeed fixes the k-means++ seeding RNG, making the run deterministic.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// Result holds per-row cluster labels and the final cluster centers
// (k rows, one per cluster).
type Result struct {
	Labels  []int
	Centers *mat.Dense
}

// Run clusters the rows of data into k clusters.
func Run(data mat.Matrix, k int, opts ...Option) (*Result, error) {
	rows, cols := data.Dims()
	if k < 1 || k > rows {
		return nil, ErrClusterCount
	}

	cfg := config{maxIterations: defaultMaxIterations, seed: defaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	centers := seedPlusPlus(data, k, rng)
	labels := make([]int, rows)
	counts := make([]int, k)

	for iter := 0; iter < cfg.maxIterations; iter++ {
		changed := false
		for i := 0; i < rows; i++ {
			best, bestDist := 0, math.Inf(1)
			for c := 0; c < k; c++ {
				d := rowDistSq(data, i, centers, c)
				if d < bestDist {
					best, bestDist = c, d
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		// Recompute centers as cluster means. An emptied cluster keeps
		// its previous center.
		next := mat.NewDense(k, cols, nil)
		for c := range counts {
			counts[c] = 0
		}
		for i := 0; i < rows; i++ {
			c := labels[i]
			counts[c]++
			for j := 0; j < cols; j++ {
				next.Set(c, j, next.At(c, j)+data.At(i, j))
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				for j := 0; j < cols; j++ {
					next.Set(c, j, centers.At(c, j))
				}
				continue
			}
			for j := 0; j < cols; j++ {
				next.Set(c, j, next.At(c, j)/float64(counts[c]))
			}
		}
		centers = next
	}

	return &Result{Labels: labels, Centers: centers}, nil
}

// seedPlusPlus picks k initial centers with the k-means++ scheme: the
// first uniformly, each further center with probability proportional to
// its squared distance from the nearest chosen center.
func seedPlusPlus(data mat.Matrix, k int, rng *rand.Rand) *mat.Dense {
	rows, cols := data.Dims()
	centers := mat.NewDense(k, cols, nil)

	first := rng.Intn(rows)
	for j := 0; j < cols; j++ {
		centers.Set(0, j, data.At(first, j))
	}

	distSq := make([]float64, rows)
	for c := 1; c < k; c++ {
		var total float64
		for i := 0; i < rows; i++ {
			best := math.Inf(1)
			for prev := 0; prev < c; prev++ {
				if d := rowDistSq(data, i, centers, prev); d < best {
					best = d
				}
			}
			distSq[i] = best
			total += best
		}

		pick := rows - 1
		if total > 0 {
			target := rng.Float64() * total
			for i := 0; i < rows; i++ {
				target -= distSq[i]
				if target <= 0 {
					pick = i
					break
				}
			}
		} else {
			pick = rng.Intn(rows)
		}

		for j := 0; j < cols; j++ {
			centers.Set(c, j, data.At(pick, j))
		}
	}

	return centers
}

// rowDistSq returns the squared Euclidean distance between row i of data
// and row c of centers.
func rowDistSq(data mat.Matrix, i int, centers *mat.Dense, c int) float64 {
	_, cols := data.Dims()
	var sum float64
	for j := 0; j < cols; j++ {
		d := data.At(i, j) - centers.At(c, j)
		sum += d * d
	}
	return sum
}
