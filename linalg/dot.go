// SPDX-License-Identifier: MIT

package linalg

import "github.com/driftlearn/sparseops/sparse"

// Dot returns the dot product of two sparse vectors: the sum of
// x[k]·y[k] over every key present in both. Keys present in only one
// vector contribute 0, so either vector being empty yields 0.
//
// The result is invariant under swapping x and y. The implementation
// iterates the smaller vector (by entry count) and probes the larger,
// bounding the cost by O(min(|x|, |y|)).
func Dot[K comparable](x, y sparse.Vector[K]) float64 {
	if len(x) > len(y) {
		x, y = y, x
	}
	var sum float64
	for k, xi := range x {
		sum += xi * y.Get(k)
	}
	return sum
}

// ChainDot generalizes Dot to any number of sparse vectors. For each key
// present in the smallest argument (by entry count), the values of that
// key across all arguments are multiplied together — a key missing from
// any argument contributes 0 and annihilates that key's term — and the
// per-key products are summed.
//
// This is a single n-ary elementwise product-then-sum, NOT a pairwise
// chain of dot products: ChainDot(x, y, z) is Σ_k x[k]·y[k]·z[k].
//
// Edge cases: a single argument yields the sum of its values; no
// arguments yield 0 (empty sum).
//
// Complexity: O(|smallest| · n) for n arguments.
func ChainDot[K comparable](xs ...sparse.Vector[K]) float64 {
	if len(xs) == 0 {
		return 0
	}

	smallest := xs[0]
	for _, x := range xs[1:] {
		if len(x) < len(smallest) {
			smallest = x
		}
	}

	var sum float64
	factors := make([]float64, len(xs))
	for k := range smallest {
		for i, x := range xs {
			factors[i] = x.Get(k)
		}
		sum += sparse.Prod(factors)
	}
	return sum
}
