package btindex

import (
	"errors"
	"fmt"

	"github.com/npillmayer/btindex/btree"
)

// Storage is the contract shared by all index backends.
//
// Keys are unique. Values are opaque to the backend and returned as stored.
type Storage[V any] interface {
	// Init bulk-loads keys and values by inserting them one by one, in the
	// given order. maxErr is a hint for approximating backends and may be
	// ignored.
	Init(keys []int64, values []V, maxErr int) error
	// Find returns the value stored for key and whether key is present.
	Find(key int64) (V, bool)
	// Insert adds key with value. It returns false, leaving the backend's
	// content unchanged, if key is already present.
	Insert(key int64, value V) bool
	// Remove deletes key. It returns false if key is absent.
	Remove(key int64) bool
	// Resort appends all keys and values in ascending key order and returns
	// the extended slices.
	Resort(keys []int64, values []V) ([]int64, []V)
	// Size returns the number of entries.
	Size() int
}

// BTreeStorage is a Storage backed by a B-tree of fixed minimum degree.
type BTreeStorage[V any] struct {
	tree *btree.Tree[V]
}

var _ Storage[int] = (*BTreeStorage[int])(nil)

// NewBTreeStorage creates an empty B-tree backed index with minimum degree
// degree. A degree of 0 selects btree.DefaultDegree.
func NewBTreeStorage[V any](degree int) (*BTreeStorage[V], error) {
	tree, err := btree.New[V](btree.Config{Degree: degree})
	if err != nil {
		return nil, err
	}
	return &BTreeStorage[V]{tree: tree}, nil
}

// Init bulk-loads keys and values, ignoring maxErr. Keys occurring more than
// once keep the value of their first occurrence.
func (s *BTreeStorage[V]) Init(keys []int64, values []V, maxErr int) error {
	return load[V](s, keys, values)
}

// Find returns the value stored for key and whether key is present.
func (s *BTreeStorage[V]) Find(key int64) (V, bool) {
	v, err := s.tree.Find(key)
	return v, err == nil
}

// Insert adds key with value and returns false if key is already present.
func (s *BTreeStorage[V]) Insert(key int64, value V) bool {
	err := s.tree.Insert(key, value)
	if err != nil && !errors.Is(err, btree.ErrDuplicateKey) {
		panic(fmt.Sprintf("btindex: unexpected insert error: %v", err))
	}
	return err == nil
}

// Remove deletes key and returns false if key is absent.
func (s *BTreeStorage[V]) Remove(key int64) bool {
	_, err := s.tree.Remove(key)
	return err == nil
}

// Resort appends all entries in ascending key order.
func (s *BTreeStorage[V]) Resort(keys []int64, values []V) ([]int64, []V) {
	return s.tree.Traverse(keys, values)
}

// Size returns the number of entries.
func (s *BTreeStorage[V]) Size() int {
	return s.tree.Len()
}

// Tree exposes the underlying B-tree, e.g. for structural inspection.
func (s *BTreeStorage[V]) Tree() *btree.Tree[V] {
	return s.tree
}

// load inserts keys and values one by one into s.
func load[V any](s Storage[V], keys []int64, values []V) error {
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys but %d values", ErrIllegalArguments, len(keys), len(values))
	}
	skipped := 0
	for i, key := range keys {
		if !s.Insert(key, values[i]) {
			skipped++
		}
	}
	if skipped > 0 {
		tracer().Debugf("bulk load: skipped %d duplicate keys of %d", skipped, len(keys))
	}
	return nil
}

// Load bulk-loads keys and values into any Storage by single inserts, for
// backends without an Init of their own.
func Load[V any](s Storage[V], keys []int64, values []V) error {
	if s == nil {
		return fmt.Errorf("%w: storage is nil", ErrIllegalArguments)
	}
	return load(s, keys, values)
}
