// Package sparse_test provides benchmarks for the shared data model.
package sparse_test

import (
	"testing"

	"github.com/driftlearn/sparseops/sparse"
)

// BenchmarkVectorClone_1000 measures copying a 1000-entry sparse vector.
func BenchmarkVectorClone_1000(b *testing.B) {
	v := make(sparse.Vector[int], 1000)
	for i := 0; i < 1000; i++ {
		v[i] = float64(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Clone()
	}
}

// BenchmarkProd_1000 measures the product reduction over 1000 factors.
func BenchmarkProd_1000(b *testing.B) {
	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = 1.0 + float64(i%3)*1e-6
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sparse.Prod(xs)
	}
}
