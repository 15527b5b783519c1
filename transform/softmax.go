package transform

import (
	"math"

	"github.com/driftlearn/sparseops/sparse"
)

// Softmax normalizes a sparse mapping of class→unnormalized log-score
// into a probability distribution, in place, and returns the same map.
//
// The maximum score is subtracted from every entry before exponentiating,
// the standard stability trick that keeps e^x from overflowing for large
// scores without changing the resulting distribution. For non-empty
// input the returned values sum to 1 within floating-point tolerance.
//
// An empty (or nil) input is returned unchanged; there is no division by
// zero. Because the argument is mutated and aliased by the return value,
// concurrent callers sharing one map must serialize access externally.
func Softmax[K comparable](scores sparse.Vector[K]) sparse.Vector[K] {
	if len(scores) == 0 {
		return scores
	}

	maximum := math.Inf(-1)
	for _, s := range scores {
		if s > maximum {
			maximum = s
		}
	}

	var total float64
	for k, s := range scores {
		e := math.Exp(s - maximum)
		scores[k] = e
		total += e
	}
	for k := range scores {
		scores[k] /= total
	}
	return scores
}
