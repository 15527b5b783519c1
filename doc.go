// Package sparseops is a small toolbox of sparse-vector and sparse-matrix
// arithmetic for online machine learning — feature spaces that are huge on
// paper but mostly zero for any single example.
//
// 🚀 What is sparseops?
//
//	A pure-Go library of independent, stateless numeric routines over a
//	shared sparse representation:
//		• Sparse primitives: Vector (key→weight) and Matrix ((row,col)→value),
//		  where an absent key means zero
//		• Vector algebra: dot products, n-ary chained dot products, outer products
//		• Matrix algebra: sparse 2-D matrix multiplication, vector×matrix products
//		• Rank-one updates: in-place Sherman–Morrison inverse maintenance
//		• Transforms: guarded sigmoid, clamp, stable softmax, Minkowski
//		  distances and vector norms
//
// ✨ Why choose sparseops?
//
//   - Entry-count complexity – every routine walks materialized entries,
//     never the full key cross-product
//   - Honest contracts – in-place mutation, aliasing and unguarded numeric
//     edge cases are documented, not hidden
//   - Pure Go – no cgo, no hidden machinery
//
// Under the hood, everything is organized under three subpackages:
//
//	sparse/    — the Vector and Matrix data model plus shared reduction helpers
//	linalg/    — dot/outer/matmul primitives and the Sherman–Morrison update
//	transform/ — scalar and elementwise numeric transforms
//
// Quick sketch:
//
//	x := sparse.Vector[string]{"x0": 1, "x1": 2}
//	y := sparse.Vector[string]{"x1": 21, "x2": 3}
//	linalg.Dot(x, y) // 42
//
// Dive into README.md for full examples and the contract of every routine.
//
//	go get github.com/driftlearn/sparseops
package sparseops
