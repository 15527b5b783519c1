// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"

	"github.com/driftlearn/sparseops/sparse"
)

// ErrSingularUpdate indicates that a rank-one update denominator
// 1 + vᵀ·A⁻¹·u is exactly zero, i.e. A + u·vᵀ is singular and has no
// inverse. Returned only by ShermanMorrisonStrict; the unguarded
// ShermanMorrison silently produces non-finite values instead.
var ErrSingularUpdate = errors.New("linalg: singular rank-one update (denominator is zero)")

// ShermanMorrison applies the Sherman–Morrison formula in place: given
// aInv holding (an approximation to) A⁻¹ and two sparse vectors u and v,
// it rewrites aInv to (A + u·vᵀ)⁻¹ and returns the same map.
//
// Algorithm:
//  1. den = 1 + Dot(DotVecMat(u, aInv), v)
//  2. correction = MatMul2D(MatMul2D(aInv, Outer(u, v)), aInv)
//  3. aInv[k] -= correction[k]/den for every key of the correction,
//     treating cells absent from aInv as 0 before the subtraction.
//
// Cells never touched by step 3 keep their prior value; cells present in
// the correction but absent from aInv are created. The update is NOT
// guarded against den == 0: a singular update silently writes ±Inf or
// NaN into aInv and returns it. Callers who need that case surfaced as
// an error should use ShermanMorrisonStrict.
//
// Because aInv is mutated and aliased by the return value, concurrent
// callers sharing one map must serialize access externally.
func ShermanMorrison[K comparable](aInv sparse.Matrix[K], u, v sparse.Vector[K]) sparse.Matrix[K] {
	den := 1 + Dot(DotVecMat(u, aInv), v)
	applyRankOneCorrection(aInv, u, v, den)
	return aInv
}

// ShermanMorrisonStrict is ShermanMorrison with a singularity guard: if
// the update denominator is exactly zero it returns ErrSingularUpdate and
// leaves aInv untouched. Otherwise it behaves exactly like
// ShermanMorrison, mutating aInv and returning the same map.
func ShermanMorrisonStrict[K comparable](aInv sparse.Matrix[K], u, v sparse.Vector[K]) (sparse.Matrix[K], error) {
	den := 1 + Dot(DotVecMat(u, aInv), v)
	if den == 0 {
		return nil, ErrSingularUpdate
	}
	applyRankOneCorrection(aInv, u, v, den)
	return aInv, nil
}

// applyRankOneCorrection subtracts (A⁻¹·u·vᵀ·A⁻¹)/den from aInv in place.
// den is not inspected here; the strict facade rejects den == 0 before
// calling, the unguarded facade lets division by zero propagate.
func applyRankOneCorrection[K comparable](aInv sparse.Matrix[K], u, v sparse.Vector[K], den float64) {
	correction := MatMul2D(MatMul2D(aInv, Outer(u, v)), aInv)
	for k, c := range correction {
		aInv[k] = aInv.Get(k) - c/den
	}
}
