package specplot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestClusterScatterWritesSVG(t *testing.T) {
	reduced := mat.NewDense(4, 2, []float64{
		0, 0,
		0.4, 0.1,
		5, 5,
		5.2, 4.9,
	})
	centers := mat.NewDense(2, 2, []float64{0.2, 0.05, 5.1, 4.95})
	labels := []int{0, 0, 1, 1}

	path := filepath.Join(t.TempDir(), "clusters.svg")
	if err := ClusterScatter(reduced, labels, centers, path); err != nil {
		t.Fatalf("ClusterScatter failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output is empty")
	}
}

func TestClusterScatterNoCenters(t *testing.T) {
	reduced := mat.NewDense(2, 2, []float64{0, 0, 1, 1})
	path := filepath.Join(t.TempDir(), "clusters.svg")

	if err := ClusterScatter(reduced, []int{0, 1}, nil, path); err != nil {
		t.Fatalf("ClusterScatter failed: %v", err)
	}
}

func TestClusterScatterValidation(t *testing.T) {
	one := mat.NewDense(2, 1, []float64{0, 1})
	if err := ClusterScatter(one, []int{0, 0}, nil, "x.svg"); !errors.Is(err, ErrDimensions) {
		t.Fatalf("err = %v, want ErrDimensions", err)
	}

	two := mat.NewDense(2, 2, nil)
	if err := ClusterScatter(two, []int{0}, nil, "x.svg"); !errors.Is(err, ErrLabelCount) {
		t.Fatalf("err = %v, want ErrLabelCount", err)
	}
}
