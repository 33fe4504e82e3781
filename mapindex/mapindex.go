package mapindex

import (
	"fmt"

	"github.com/google/btree"
	"github.com/npillmayer/btindex"
)

// DefaultDegree is the fanout used by New when degree is 0.
const DefaultDegree = 32

type entry[V any] struct {
	key   int64
	value V
}

func less[V any](a, b entry[V]) bool {
	return a.key < b.key
}

// Index is a btindex.Storage on an ordered map.
type Index[V any] struct {
	m *btree.BTreeG[entry[V]]
}

var _ btindex.Storage[int] = (*Index[int])(nil)

// New creates an empty index. degree is handed to the underlying ordered map
// and must be 0 (default) or at least 2.
func New[V any](degree int) (*Index[V], error) {
	if degree == 0 {
		degree = DefaultDegree
	}
	if degree < 2 {
		return nil, fmt.Errorf("%w: degree must be >= 2, is %d", btindex.ErrIllegalArguments, degree)
	}
	return &Index[V]{m: btree.NewG[entry[V]](degree, less[V])}, nil
}

// Init bulk-loads keys and values by single inserts; maxErr is ignored.
func (ix *Index[V]) Init(keys []int64, values []V, maxErr int) error {
	return btindex.Load[V](ix, keys, values)
}

// Find returns the value stored for key and whether key is present.
func (ix *Index[V]) Find(key int64) (V, bool) {
	e, ok := ix.m.Get(entry[V]{key: key})
	return e.value, ok
}

// Insert adds key with value and returns false if key is already present.
func (ix *Index[V]) Insert(key int64, value V) bool {
	e := entry[V]{key: key, value: value}
	if ix.m.Has(e) {
		return false
	}
	ix.m.ReplaceOrInsert(e)
	return true
}

// Remove deletes key and returns false if key is absent.
func (ix *Index[V]) Remove(key int64) bool {
	_, ok := ix.m.Delete(entry[V]{key: key})
	return ok
}

// Resort appends all entries in ascending key order.
func (ix *Index[V]) Resort(keys []int64, values []V) ([]int64, []V) {
	ix.m.Ascend(func(e entry[V]) bool {
		keys = append(keys, e.key)
		values = append(values, e.value)
		return true
	})
	return keys, values
}

// Size returns the number of entries.
func (ix *Index[V]) Size() int {
	return ix.m.Len()
}
