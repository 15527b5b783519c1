package transform_test

import (
	"fmt"

	"github.com/driftlearn/sparseops/sparse"
	"github.com/driftlearn/sparseops/transform"
)

// ExampleSigmoid demonstrates the midpoint and the guarded tails.
func ExampleSigmoid() {
	fmt.Println(transform.Sigmoid(0))
	fmt.Println(transform.Sigmoid(-100))
	fmt.Println(transform.Sigmoid(100))
	// Output:
	// 0.5
	// 0
	// 1
}

// ExampleClamp demonstrates boundary snapping on the unit interval.
func ExampleClamp() {
	fmt.Println(transform.Clamp(0.3, 0, 1))
	fmt.Println(transform.Clamp(-2, 0, 1))
	fmt.Println(transform.Clamp(9, 0, 1))
	// Output:
	// 0.3
	// 0
	// 1
}

// ExampleSoftmax demonstrates normalizing class scores into a probability
// distribution; entries are read back per class for deterministic output.
func ExampleSoftmax() {
	scores := sparse.Vector[string]{"cat": 1, "dog": 2, "bird": 3}

	probs := transform.Softmax(scores)
	fmt.Printf("cat=%.4f\n", probs.Get("cat"))
	fmt.Printf("dog=%.4f\n", probs.Get("dog"))
	fmt.Printf("bird=%.4f\n", probs.Get("bird"))
	// Output:
	// cat=0.0900
	// dog=0.2447
	// bird=0.6652
}

// ExampleMinkowskiDistance demonstrates that the p-th root is not taken:
// p=2 gives the squared Euclidean distance.
func ExampleMinkowskiDistance() {
	a := sparse.Vector[string]{"x": 3}
	b := sparse.Vector[string]{"y": 4}

	fmt.Println(transform.MinkowskiDistance(a, b, 1))
	fmt.Println(transform.MinkowskiDistance(a, b, 2))
	// Output:
	// 7
	// 25
}

// ExampleNorm2 demonstrates the Euclidean norm over a sparse vector's
// values.
func ExampleNorm2() {
	x := sparse.Vector[string]{"a": 3, "b": -4}

	fmt.Println(transform.Norm2(x))
	// Output:
	// 5
}
