package sparse

import "golang.org/x/exp/constraints"

// Number constrains the element types accepted by Prod: any integer or
// floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Prod returns the product of xs. The empty product is 1, the
// multiplicative identity, so Prod of no elements composes cleanly with
// chained reductions.
//
// Complexity: O(len(xs)).
func Prod[T Number](xs []T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}
	return p
}
