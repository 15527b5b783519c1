package transform_test

import (
	"testing"

	"github.com/driftlearn/sparseops/sparse"
	"github.com/driftlearn/sparseops/transform"
	"github.com/stretchr/testify/assert"
)

// TestMinkowskiDistance_Manhattan verifies p=1 over a key union spanning
// keys unique to each side: |1-0| + |2-5| + |0-1| = 5.
func TestMinkowskiDistance_Manhattan(t *testing.T) {
	a := sparse.Vector[string]{"x": 1, "y": 2}
	b := sparse.Vector[string]{"y": 5, "z": 1}

	assert.InDelta(t, 5.0, transform.MinkowskiDistance(a, b, 1), 1e-12)
}

// TestMinkowskiDistance_SquaredEuclidean verifies that p=2 yields the
// squared Euclidean distance — the 1/p-th root is deliberately not taken.
func TestMinkowskiDistance_SquaredEuclidean(t *testing.T) {
	a := sparse.Vector[string]{"x": 3}
	b := sparse.Vector[string]{"y": 4}

	got := transform.MinkowskiDistance(a, b, 2)
	assert.InDelta(t, 25.0, got, 1e-12, "result must be 3²+4² = 25, NOT the rooted 5")
}

// TestMinkowskiDistance_Symmetric verifies symmetry in a and b for
// several orders.
func TestMinkowskiDistance_Symmetric(t *testing.T) {
	a := sparse.Vector[string]{"u": 1.5, "v": -2, "w": 0.25}
	b := sparse.Vector[string]{"v": 3, "x": -1}

	for _, p := range []float64{1, 2, 3, 4.5} {
		assert.InDelta(t,
			transform.MinkowskiDistance(a, b, p),
			transform.MinkowskiDistance(b, a, p),
			1e-12, "distance must be symmetric for p=%v", p)
	}
}

// TestMinkowskiDistance_Identical verifies that identical vectors are at
// distance 0, and so are two empty vectors.
func TestMinkowskiDistance_Identical(t *testing.T) {
	a := sparse.Vector[string]{"x": 1, "y": -2}

	assert.Equal(t, 0.0, transform.MinkowskiDistance(a, a.Clone(), 2))
	assert.Equal(t, 0.0, transform.MinkowskiDistance(sparse.Vector[string]{}, sparse.Vector[string]{}, 1))
}

// TestMinkowskiDistance_AbsentIsZero verifies that a key absent on one
// side compares against 0, including negative values.
func TestMinkowskiDistance_AbsentIsZero(t *testing.T) {
	a := sparse.Vector[string]{"x": -3}
	b := sparse.Vector[string]{}

	assert.InDelta(t, 3.0, transform.MinkowskiDistance(a, b, 1), 1e-12)
	assert.InDelta(t, 9.0, transform.MinkowskiDistance(a, b, 2), 1e-12)
}
