package transform

import (
	"github.com/driftlearn/sparseops/sparse"
	"gonum.org/v1/gonum/floats"
)

// Norm returns the norm of x's values for the given order: ord=1 is the
// Manhattan norm, ord=2 the Euclidean norm, math.Inf(1) the maximum
// absolute value, and any other positive ord the general p-norm.
//
// The value list is densified and handed to a general-purpose norm
// routine; sparsity is not exploited. That is correct as long as
// zero-valued keys are simply absent — stored-zero entries would
// contribute 0 to any norm anyway. An empty vector has norm 0.
func Norm[K comparable](x sparse.Vector[K], ord float64) float64 {
	if len(x) == 0 {
		return 0
	}
	vals := make([]float64, 0, len(x))
	for _, v := range x {
		vals = append(vals, v)
	}
	return floats.Norm(vals, ord)
}

// Norm2 returns the Euclidean norm of x's values, the default order.
func Norm2[K comparable](x sparse.Vector[K]) float64 {
	return Norm(x, 2)
}
