package btree

import (
	"iter"
	"slices"
)

// ForEach walks all entries in ascending key order.
//
// Iteration stops early if callback returns false. The tree must not be
// mutated from within the callback.
func (t *Tree[V]) ForEach(fn func(key int64, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[V]) forEachNode(n treeNode[V], fn func(key int64, value V) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	e := n.base()
	if n.isLeaf() {
		for i, key := range e.keys {
			if !fn(key, e.values[i]) {
				return false
			}
		}
		return true
	}
	inner := n.(*innerNode[V])
	for i, key := range e.keys {
		if !t.forEachNode(inner.children[i], fn) {
			return false
		}
		if !fn(key, e.values[i]) {
			return false
		}
	}
	return t.forEachNode(inner.children[len(e.keys)], fn)
}

// All returns an iterator over all entries in ascending key order.
// Every call starts a fresh walk.
func (t *Tree[V]) All() iter.Seq2[int64, V] {
	return func(yield func(int64, V) bool) {
		t.ForEach(yield)
	}
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[V]) Keys() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		t.ForEach(func(key int64, _ V) bool {
			return yield(key)
		})
	}
}

// Traverse appends all keys and values in ascending key order to keys and
// values and returns the extended slices.
func (t *Tree[V]) Traverse(keys []int64, values []V) ([]int64, []V) {
	keys = slices.Grow(keys, t.Len())
	values = slices.Grow(values, t.Len())
	t.ForEach(func(key int64, value V) bool {
		keys = append(keys, key)
		values = append(values, value)
		return true
	})
	return keys, values
}

// NodeInfo describes a single node for structural inspection.
type NodeInfo struct {
	ID     int     // pre-order number of the node, root is 0
	Parent int     // ID of the parent node, -1 for the root
	Depth  int     // distance from the root
	Leaf   bool    // whether the node is a leaf
	Keys   []int64 // copy of the node's keys
}

// WalkNodes visits every node in pre-order. Walking stops early if fn returns
// false. Keys handed to fn are copies and may be retained.
func (t *Tree[V]) WalkNodes(fn func(NodeInfo) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	next := 0
	var walk func(n treeNode[V], parent, depth int) bool
	walk = func(n treeNode[V], parent, depth int) bool {
		id := next
		next++
		info := NodeInfo{
			ID:     id,
			Parent: parent,
			Depth:  depth,
			Leaf:   n.isLeaf(),
			Keys:   append([]int64(nil), n.base().keys...),
		}
		if !fn(info) {
			return false
		}
		if inner, ok := n.(*innerNode[V]); ok {
			for _, child := range inner.children {
				if !walk(child, id, depth+1) {
					return false
				}
			}
		}
		return true
	}
	walk(t.root, -1, 0)
}
