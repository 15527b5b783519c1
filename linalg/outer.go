// SPDX-License-Identifier: MIT

package linalg

import "github.com/driftlearn/sparseops/sparse"

// Outer returns the outer product u·vᵀ of two sparse vectors: a sparse
// matrix whose cell (ku, kv) holds u[ku]·v[kv] for every pair of keys
// present in u and v respectively.
//
// The full cross-product of present entries is materialized — a product
// that happens to be 0 still receives a cell, so the result always has
// exactly |u|·|v| entries. This is the rank-one building block consumed
// by ShermanMorrison.
//
// Complexity: O(|u|·|v|).
func Outer[K comparable](u, v sparse.Vector[K]) sparse.Matrix[K] {
	out := make(sparse.Matrix[K], len(u)*len(v))
	for ku, uw := range u {
		for kv, vw := range v {
			out[sparse.Key[K]{Row: ku, Col: kv}] = uw * vw
		}
	}
	return out
}
