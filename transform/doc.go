// Package transform collects the scalar and elementwise numeric utilities
// of sparseops: a numerically guarded sigmoid, clamping, an in-place
// numerically stable softmax, Minkowski distances, and vector norms.
//
// What:
//
//   - Sigmoid(x)               — logistic function with a ±30 overflow guard.
//   - Clamp(x, lo, hi)         — x restricted to [lo, hi]; Clamp01 for [0, 1].
//   - Softmax(y)               — in-place normalization of class scores into
//     a probability distribution (max-subtract trick).
//   - MinkowskiDistance(a,b,p) — Σ|a[k]−b[k]|^p over the key union. Note:
//     the 1/p-th root is deliberately NOT taken; see the function docs.
//   - Norm(x, ord)             — norm of x's values for a given order;
//     Norm2 for the Euclidean default.
//
// Contracts:
//
//   - Only Softmax mutates its argument, and it returns the same map it
//     was handed; everything else is a pure function of its inputs.
//   - No input validation: a degenerate Clamp range (lo > hi) resolves to
//     lo rather than erroring, and an empty Softmax input is returned
//     unchanged. These silent policies are deliberate pass-through
//     behavior for a thin numeric layer.
package transform
