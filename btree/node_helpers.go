package btree

// newLeaf allocates an empty leaf with storage for maxKeys entries.
func newLeaf[V any](maxKeys int) *leafNode[V] {
	return &leafNode[V]{entries: makeEntries[V](maxKeys)}
}

// newInner allocates an empty inner node with storage for maxKeys entries and
// maxKeys+1 children.
func newInner[V any](maxKeys int) *innerNode[V] {
	return &innerNode[V]{
		entries:  makeEntries[V](maxKeys),
		children: make([]treeNode[V], 0, maxKeys+1),
	}
}

// makeLeaf materializes a new leaf holding the given entries. It is a helper
// for tests and for assembling trees by hand.
func (t *Tree[V]) makeLeaf(keys []int64, values []V) *leafNode[V] {
	assert(len(keys) == len(values), "makeLeaf key/value count mismatch")
	leaf := newLeaf[V](t.cfg.MaxKeys())
	leaf.appendEntries(keys, values)
	return leaf
}

// makeInternal materializes a new inner node from separators and children.
func (t *Tree[V]) makeInternal(keys []int64, values []V, children ...treeNode[V]) *innerNode[V] {
	assert(len(keys) == len(values), "makeInternal key/value count mismatch")
	assert(len(children) == len(keys)+1, "makeInternal needs one more child than keys")
	inner := newInner[V](t.cfg.MaxKeys())
	inner.appendEntries(keys, values)
	inner.children = append(inner.children, children...)
	return inner
}
