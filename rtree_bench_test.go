package geogo

import (
	"math/rand"
	"testing"
)

func buildTree(b *testing.B, n, maxEntries int) *RTree[int] {
	b.Helper()

	rng := rand.New(rand.NewSource(1))
	tree, err := New[int](maxEntries)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		tree.Insert(rng.Float64()*1000, rng.Float64()*1000, i)
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	xs := make([]float64, b.N)
	ys := make([]float64, b.N)
	for i := range xs {
		xs[i] = rng.Float64() * 1000
		ys[i] = rng.Float64() * 1000
	}

	tree, err := New[int](8)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(xs[i], ys[i], i)
	}
}

func BenchmarkSearchRect(b *testing.B) {
	tree := buildTree(b, 10000, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tree.SearchRect(100, 100, 200, 200)
	}
}

func BenchmarkKNN(b *testing.B) {
	tree := buildTree(b, 10000, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.KNN(500, 500, 10)
	}
}
