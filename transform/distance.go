package transform

import (
	"math"

	"github.com/driftlearn/sparseops/sparse"
)

// MinkowskiDistance returns Σ_k |a[k]−b[k]|^p over the union of keys
// present in either vector, with absent keys contributing 0.
//
// p=1 yields the Manhattan distance; p=2 yields the SQUARED Euclidean
// distance. The classical 1/p-th root is deliberately not taken — the
// result is the Minkowski distance raised to the p-th power, which is
// monotone in the true distance and therefore sufficient (and cheaper)
// for the comparison and ranking callers this layer serves. Take
// math.Pow(d, 1/p) if the rooted distance is required.
//
// Symmetric in a and b. Complexity: O(|a| + |b|).
func MinkowskiDistance[K comparable](a, b sparse.Vector[K], p float64) float64 {
	var sum float64
	for k, av := range a {
		sum += math.Pow(math.Abs(av-b.Get(k)), p)
	}
	for k, bv := range b {
		if _, seen := a[k]; seen {
			continue // already covered by the first pass
		}
		sum += math.Pow(math.Abs(bv), p)
	}
	return sum
}
