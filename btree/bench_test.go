package btree

import (
	"math/rand"
	"testing"
)

func benchmarkInsert(b *testing.B, degree int) {
	keys := rand.New(rand.NewSource(1)).Perm(b.N)
	tree := makeTree(b, degree)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(int64(keys[i]), "")
	}
}

func BenchmarkInsertDegree3(b *testing.B)  { benchmarkInsert(b, 3) }
func BenchmarkInsertDegree32(b *testing.B) { benchmarkInsert(b, 32) }

func BenchmarkFind(b *testing.B) {
	const n = 100000
	tree := makeTree(b, 16)
	for i := 0; i < n; i++ {
		tree.Insert(int64(i), "")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Find(int64(i % n))
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	tree := makeTree(b, 8)
	for i := 0; i < 10000; i++ {
		tree.Insert(int64(i*2), "")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := int64((i%10000)*2 + 1)
		tree.Insert(k, "")
		tree.Remove(k)
	}
}
