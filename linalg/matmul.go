// SPDX-License-Identifier: MIT

package linalg

import "github.com/driftlearn/sparseops/sparse"

// MatMul2D returns the sparse matrix product of a and b. Cell (i, j) of
// the result accumulates a[(i,k)]·b[(k,j)] over every inner index k for
// which both cells are present; pairs whose inner indices never match
// produce no output cell at all.
//
// The implementation walks the cross-product of present entries and
// accumulates wherever the inner indices coincide, so cost is O(|a|·|b|)
// in entry counts, independent of the key-space size. A matched pair
// whose product is 0 still materializes its output cell (accumulation
// starts from 0.0 on first match).
func MatMul2D[K comparable](a, b sparse.Matrix[K]) sparse.Matrix[K] {
	out := make(sparse.Matrix[K])
	for ka, x := range a {
		for kb, y := range b {
			if ka.Col != kb.Row {
				continue
			}
			ij := sparse.Key[K]{Row: ka.Row, Col: kb.Col}
			out[ij] += x * y
		}
	}
	return out
}

// DotVecMat returns the sparse row-vector×matrix product x·a: result key
// k accumulates x[i]·a[(i,k)] over every matrix entry whose row index i
// is present in x. Semantically x is a 1×n row vector and a is n×m.
//
// Complexity: O(|x|·|a|) in present entries.
func DotVecMat[K comparable](x sparse.Vector[K], a sparse.Matrix[K]) sparse.Vector[K] {
	out := make(sparse.Vector[K])
	for ka, aw := range a {
		xi, ok := x[ka.Row]
		if !ok {
			continue
		}
		out[ka.Col] += xi * aw
	}
	return out
}
