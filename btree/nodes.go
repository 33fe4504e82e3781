package btree

import "slices"

// treeNode is either a *leafNode or an *innerNode.
type treeNode[V any] interface {
	isLeaf() bool
	base() *entries[V]
	// insertAt shifts entries at pos to the right and writes key/value at pos.
	// For inner nodes, left becomes children[pos]; leaves require left == nil.
	insertAt(pos int, key int64, value V, left treeNode[V])
	// removeAt removes the entry at pos and, for inner nodes, children[pos].
	removeAt(pos int) (int64, V, treeNode[V])
	// pushBack appends an entry; for inner nodes right becomes the last child.
	pushBack(key int64, value V, right treeNode[V])
	// popBack removes the last entry and, for inner nodes, the last child.
	popBack() (int64, V, treeNode[V])
	// split moves the upper half into a new sibling and returns the median.
	split() (int64, V, treeNode[V])
	// mergeWith absorbs the separator and all of right's content.
	mergeWith(key int64, value V, right treeNode[V])
}

// entries is the key/value storage shared by both node kinds.
//
// keys and values are views of equal length over storage of capacity 2t-1,
// allocated once at node creation. len(keys) is the node's key count.
type entries[V any] struct {
	keys   []int64
	values []V
}

func makeEntries[V any](maxKeys int) entries[V] {
	return entries[V]{
		keys:   make([]int64, 0, maxKeys),
		values: make([]V, 0, maxKeys),
	}
}

func (e *entries[V]) base() *entries[V] { return e }

// size is the number of live entries.
func (e *entries[V]) size() int { return len(e.keys) }

// maxKeys is the fixed capacity 2t-1.
func (e *entries[V]) maxKeys() int { return cap(e.keys) }

// minKeys is the lower occupancy bound t-1 for non-root nodes.
func (e *entries[V]) minKeys() int { return cap(e.keys) / 2 }

func (e *entries[V]) full() bool { return len(e.keys) == cap(e.keys) }

// minimal reports whether the node is at its lowest legal occupancy.
func (e *entries[V]) minimal() bool { return len(e.keys) <= e.minKeys() }

// findKey returns the smallest index i with keys[i] >= key (or size() if there
// is none) and whether keys[i] == key. The index is also the child slot to
// descend through when the key is absent.
func (e *entries[V]) findKey(key int64) (int, bool) {
	if len(e.keys) <= linearScanMax {
		return e.findKeyLinear(key)
	}
	return slices.BinarySearch(e.keys, key)
}

func (e *entries[V]) findKeyLinear(key int64) (int, bool) {
	for i, k := range e.keys {
		if k >= key {
			return i, k == key
		}
	}
	return len(e.keys), false
}

func (e *entries[V]) insertEntry(pos int, key int64, value V) {
	n := len(e.keys)
	assert(pos >= 0 && pos <= n, "insertEntry position out of range")
	assert(n < cap(e.keys), "insertEntry on full node")
	e.keys = e.keys[:n+1]
	e.values = e.values[:n+1]
	copy(e.keys[pos+1:], e.keys[pos:n])
	copy(e.values[pos+1:], e.values[pos:n])
	e.keys[pos] = key
	e.values[pos] = value
}

func (e *entries[V]) removeEntry(pos int) (int64, V) {
	n := len(e.keys)
	assert(pos >= 0 && pos < n, "removeEntry position out of range")
	key, value := e.keys[pos], e.values[pos]
	copy(e.keys[pos:], e.keys[pos+1:n])
	copy(e.values[pos:], e.values[pos+1:n])
	e.truncate(n - 1)
	return key, value
}

// truncate shrinks the views to n entries and clears the vacated slots, so
// that values no longer reachable are not retained by the storage.
func (e *entries[V]) truncate(n int) {
	var zero V
	for i := n; i < len(e.keys); i++ {
		e.keys[i] = 0
		e.values[i] = zero
	}
	e.keys = e.keys[:n]
	e.values = e.values[:n]
}

func (e *entries[V]) appendEntries(keys []int64, values []V) {
	assert(len(e.keys)+len(keys) <= cap(e.keys), "appendEntries exceeds node capacity")
	e.keys = append(e.keys, keys...)
	e.values = append(e.values, values...)
}

// --- Leaf nodes -------------------------------------------------------------

type leafNode[V any] struct {
	entries[V]
}

func (l *leafNode[V]) isLeaf() bool { return true }

func (l *leafNode[V]) insertAt(pos int, key int64, value V, left treeNode[V]) {
	assert(left == nil, "leaf insertAt called with child")
	l.insertEntry(pos, key, value)
}

func (l *leafNode[V]) removeAt(pos int) (int64, V, treeNode[V]) {
	key, value := l.removeEntry(pos)
	return key, value, nil
}

func (l *leafNode[V]) pushBack(key int64, value V, right treeNode[V]) {
	assert(right == nil, "leaf pushBack called with child")
	l.insertEntry(l.size(), key, value)
}

func (l *leafNode[V]) popBack() (int64, V, treeNode[V]) {
	key, value := l.removeEntry(l.size() - 1)
	return key, value, nil
}

func (l *leafNode[V]) split() (int64, V, treeNode[V]) {
	assert(l.full(), "split called on non-full leaf")
	mid := l.minKeys()
	right := newLeaf[V](l.maxKeys())
	right.appendEntries(l.keys[mid+1:], l.values[mid+1:])
	key, value := l.keys[mid], l.values[mid]
	l.truncate(mid)
	return key, value, right
}

func (l *leafNode[V]) mergeWith(key int64, value V, right treeNode[V]) {
	r, ok := right.(*leafNode[V])
	assert(ok, "leaf mergeWith expects a leaf sibling")
	assert(l.size() == l.minKeys() && r.size() == r.minKeys(), "mergeWith requires minimal nodes")
	l.insertEntry(l.size(), key, value)
	l.appendEntries(r.keys, r.values)
	r.truncate(0)
}

// --- Inner nodes ------------------------------------------------------------

type innerNode[V any] struct {
	entries[V]
	// children is a view over storage of capacity 2t; for any inner node in a
	// consistent tree len(children) == len(keys)+1.
	children []treeNode[V]
}

func (n *innerNode[V]) isLeaf() bool { return false }

func (n *innerNode[V]) insertAt(pos int, key int64, value V, left treeNode[V]) {
	assert(left != nil, "inner insertAt called without child")
	n.insertEntry(pos, key, value)
	c := len(n.children)
	assert(c < cap(n.children), "inner insertAt exceeds child capacity")
	n.children = n.children[:c+1]
	copy(n.children[pos+1:], n.children[pos:c])
	n.children[pos] = left
}

func (n *innerNode[V]) removeAt(pos int) (int64, V, treeNode[V]) {
	key, value := n.removeEntry(pos)
	return key, value, n.removeChild(pos)
}

func (n *innerNode[V]) pushBack(key int64, value V, right treeNode[V]) {
	assert(right != nil, "inner pushBack called without child")
	assert(len(n.children) < cap(n.children), "inner pushBack exceeds child capacity")
	n.insertEntry(n.size(), key, value)
	n.children = append(n.children, right)
}

func (n *innerNode[V]) popBack() (int64, V, treeNode[V]) {
	key, value := n.removeEntry(n.size() - 1)
	return key, value, n.removeChild(len(n.children) - 1)
}

func (n *innerNode[V]) removeChild(pos int) treeNode[V] {
	c := len(n.children)
	assert(pos >= 0 && pos < c, "removeChild position out of range")
	child := n.children[pos]
	copy(n.children[pos:], n.children[pos+1:c])
	n.truncateChildren(c - 1)
	return child
}

func (n *innerNode[V]) truncateChildren(c int) {
	for i := c; i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = n.children[:c]
}

func (n *innerNode[V]) split() (int64, V, treeNode[V]) {
	assert(n.full(), "split called on non-full inner node")
	mid := n.minKeys()
	right := newInner[V](n.maxKeys())
	right.appendEntries(n.keys[mid+1:], n.values[mid+1:])
	right.children = append(right.children, n.children[mid+1:]...)
	key, value := n.keys[mid], n.values[mid]
	n.truncate(mid)
	n.truncateChildren(mid + 1)
	return key, value, right
}

func (n *innerNode[V]) mergeWith(key int64, value V, right treeNode[V]) {
	r, ok := right.(*innerNode[V])
	assert(ok, "inner mergeWith expects an inner sibling")
	assert(n.size() == n.minKeys() && r.size() == r.minKeys(), "mergeWith requires minimal nodes")
	n.insertEntry(n.size(), key, value)
	n.appendEntries(r.keys, r.values)
	assert(len(n.children)+len(r.children) <= cap(n.children), "mergeWith exceeds child capacity")
	n.children = append(n.children, r.children...)
	r.truncate(0)
	r.truncateChildren(0)
}

// splitChild splits the full child at pos. The median moves into n at pos, the
// original child stays at pos and the new right sibling ends up at pos+1.
func (n *innerNode[V]) splitChild(pos int) {
	left := n.children[pos]
	key, value, right := left.split()
	n.children[pos] = right
	n.insertAt(pos, key, value, left)
}

// mergeChildren merges children pos and pos+1 around separator keys[pos] and
// returns the merged child, which now lives at pos.
func (n *innerNode[V]) mergeChildren(pos int) treeNode[V] {
	assert(pos >= 0 && pos < n.size(), "mergeChildren position out of range")
	key, value, left := n.removeAt(pos)
	left.mergeWith(key, value, n.children[pos])
	n.children[pos] = left
	return left
}

// rotateLeft moves one entry from children[pos+1] through the separator at
// pos into children[pos]. The right sibling's first child moves along and
// becomes the left sibling's last child.
func (n *innerNode[V]) rotateLeft(pos int) {
	left, right := n.children[pos], n.children[pos+1]
	assert(!right.base().minimal(), "rotateLeft from minimal sibling")
	key, value, child := right.removeAt(0)
	left.pushBack(n.keys[pos], n.values[pos], child)
	n.keys[pos], n.values[pos] = key, value
}

// rotateRight moves one entry from children[pos] through the separator at pos
// into children[pos+1]. The left sibling's last child moves along and becomes
// the right sibling's first child.
func (n *innerNode[V]) rotateRight(pos int) {
	left, right := n.children[pos], n.children[pos+1]
	assert(!left.base().minimal(), "rotateRight from minimal sibling")
	key, value, child := left.popBack()
	right.insertAt(0, n.keys[pos], n.values[pos], child)
	n.keys[pos], n.values[pos] = key, value
}
