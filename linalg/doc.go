// Package linalg implements sparse vector and matrix algebra over the
// sparse.Vector and sparse.Matrix data model: dot products, an n-ary
// chained dot product, outer products, sparse 2-D matrix multiplication,
// vector×matrix products, and an in-place Sherman–Morrison rank-one
// inverse update.
//
// What:
//
//   - Dot(x, y)        — Σ x[k]·y[k] over keys present in both vectors.
//   - ChainDot(xs...)  — Σ over keys of the smallest argument of the n-ary
//     elementwise product across all arguments.
//   - Outer(u, v)      — the rank-one matrix u·vᵀ over present entries.
//   - MatMul2D(a, b)   — sparse matrix·matrix product via inner-index match.
//   - DotVecMat(x, a)  — sparse row-vector·matrix product.
//   - ShermanMorrison  — in-place (A + u·vᵀ)⁻¹ maintenance from A⁻¹.
//
// Complexity:
//
//   - Dot:            O(min(|x|, |y|)) — iterates the smaller operand.
//   - ChainDot:       O(|smallest| · n) for n argument vectors.
//   - Outer:          O(|u|·|v|) in present entries.
//   - MatMul2D:       O(|a|·|b|) in present entries (NOT key-space size).
//   - DotVecMat:      O(|x|·|a|) in present entries.
//   - ShermanMorrison: dominated by its two MatMul2D calls.
//
// Contracts:
//
//   - Missing keys contribute 0 everywhere; no operation requires operands
//     to share a key set or carry a shape.
//   - Only ShermanMorrison mutates an argument, and it returns the same map
//     it was handed. Every other routine allocates its result.
//   - No input validation is performed. In particular, ShermanMorrison does
//     not guard against a singular update: a zero denominator silently
//     yields non-finite values. ShermanMorrisonStrict is the guarded
//     variant for callers who want ErrSingularUpdate instead.
//
// Errors:
//
//   - ErrSingularUpdate — returned only by ShermanMorrisonStrict when the
//     update denominator is exactly zero.
package linalg
