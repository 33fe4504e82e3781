package btree

// Tree is an in-memory B-tree mapping unique int64 keys to values of type V.
//
// The zero value is not usable; create trees with New.
type Tree[V any] struct {
	cfg    Config
	root   treeNode[V]
	count  int
	height int // 1 means a leaf root
}

// New creates an empty tree with validated configuration. The root starts as
// an empty leaf.
func New[V any](cfg Config) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[V]{cfg: cfg}
	t.Clear()
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config {
	return t.cfg
}

// Degree returns the minimum degree t of the tree.
func (t *Tree[V]) Degree() int {
	return t.cfg.Degree
}

// Len returns the number of entries in the tree.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[V]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the tree height, where 1 means a leaf root.
func (t *Tree[V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Clear drops all entries and resets the root to an empty leaf.
func (t *Tree[V]) Clear() {
	t.root = newLeaf[V](t.cfg.MaxKeys())
	t.count = 0
	t.height = 1
}

// Find returns the value stored for key, or ErrKeyNotFound.
func (t *Tree[V]) Find(key int64) (V, error) {
	cur := t.root
	for {
		pos, found := cur.base().findKey(key)
		if found {
			return cur.base().values[pos], nil
		}
		inner, ok := cur.(*innerNode[V])
		if !ok {
			var zero V
			return zero, ErrKeyNotFound
		}
		cur = inner.children[pos]
	}
}

// Contains reports whether key is present in the tree.
func (t *Tree[V]) Contains(key int64) bool {
	_, err := t.Find(key)
	return err == nil
}

// Min returns the smallest key and its value, or ErrKeyNotFound for an empty tree.
func (t *Tree[V]) Min() (int64, V, error) {
	if t.count == 0 {
		var zero V
		return 0, zero, ErrKeyNotFound
	}
	key, value := minEntry(t.root)
	return key, value, nil
}

// Max returns the largest key and its value, or ErrKeyNotFound for an empty tree.
func (t *Tree[V]) Max() (int64, V, error) {
	if t.count == 0 {
		var zero V
		return 0, zero, ErrKeyNotFound
	}
	key, value := maxEntry(t.root)
	return key, value, nil
}

// Insert adds key with value. If key is already present, Insert returns
// ErrDuplicateKey and the tree's content is left unchanged.
//
// Full nodes are split before the descent passes through them, so the leaf
// finally receiving the entry always has room and no split ever has to
// propagate upwards.
func (t *Tree[V]) Insert(key int64, value V) error {
	if t.root.base().full() {
		t.splitRoot()
	}
	cur := t.root
	for {
		pos, found := cur.base().findKey(key)
		if found {
			return ErrDuplicateKey
		}
		inner, ok := cur.(*innerNode[V])
		if !ok {
			cur.insertAt(pos, key, value, nil)
			t.count++
			return nil
		}
		if inner.children[pos].base().full() {
			inner.splitChild(pos)
			// the promoted median may redirect the descent to the new sibling
			switch median := inner.keys[pos]; {
			case key > median:
				pos++
			case key == median:
				return ErrDuplicateKey
			}
		}
		cur = inner.children[pos]
	}
}

// splitRoot wraps the full root into a new root and splits it. This is the
// only place where the tree grows in height.
func (t *Tree[V]) splitRoot() {
	root := newInner[V](t.cfg.MaxKeys())
	root.children = append(root.children, t.root)
	root.splitChild(0)
	t.root = root
	t.height++
	tracer().Debugf("btree: root split, height is now %d", t.height)
}

// Remove deletes key and returns the value it carried, or ErrKeyNotFound if
// key is absent.
//
// Before descending into a child holding only t-1 keys, the child is grown by
// rotating an entry from a richer sibling or, failing that, by merging it
// with a sibling. Hence the node an entry is finally removed from never
// underflows.
func (t *Tree[V]) Remove(key int64) (V, error) {
	value, err := t.remove(key)
	// merges on the way down may have drained the root, even if key was absent
	t.shrinkRoot()
	return value, err
}

func (t *Tree[V]) remove(key int64) (V, error) {
	var removed V
	captured := false
	target := key
	cur := t.root
	for {
		pos, found := cur.base().findKey(target)
		inner, isInner := cur.(*innerNode[V])
		if found {
			if !captured {
				removed, captured = cur.base().values[pos], true
			}
			if !isInner {
				cur.removeAt(pos)
				t.count--
				return removed, nil
			}
			left, right := inner.children[pos], inner.children[pos+1]
			switch {
			case !left.base().minimal():
				// replace by in-order predecessor, then delete that one below
				k, v := maxEntry(left)
				inner.keys[pos], inner.values[pos] = k, v
				target, cur = k, left
			case !right.base().minimal():
				k, v := minEntry(right)
				inner.keys[pos], inner.values[pos] = k, v
				target, cur = k, right
			default:
				// target becomes an ordinary entry of the merged child
				cur = inner.mergeChildren(pos)
			}
			continue
		}
		if !isInner {
			var zero V
			return zero, ErrKeyNotFound
		}
		cur = inner.growChild(pos)
	}
}

// growChild makes sure children[pos] holds more than t-1 keys before the
// descent enters it, and returns the child to descend into. The returned
// child may be a merged node at pos-1.
func (n *innerNode[V]) growChild(pos int) treeNode[V] {
	child := n.children[pos]
	if !child.base().minimal() {
		return child
	}
	switch {
	case pos > 0 && !n.children[pos-1].base().minimal():
		n.rotateRight(pos - 1)
	case pos < n.size() && !n.children[pos+1].base().minimal():
		n.rotateLeft(pos)
	case pos < n.size():
		return n.mergeChildren(pos)
	default:
		return n.mergeChildren(pos - 1)
	}
	return n.children[pos]
}

// shrinkRoot replaces an inner root without separators by its only child.
// This is the only place where the tree shrinks in height.
func (t *Tree[V]) shrinkRoot() {
	inner, ok := t.root.(*innerNode[V])
	if !ok || inner.size() > 0 {
		return
	}
	assert(len(inner.children) == 1, "empty inner root must have exactly one child")
	t.root = inner.children[0]
	inner.truncateChildren(0)
	t.height--
	tracer().Debugf("btree: root collapsed, height is now %d", t.height)
}

// minEntry returns the leftmost entry of the subtree at n.
func minEntry[V any](n treeNode[V]) (int64, V) {
	for !n.isLeaf() {
		n = n.(*innerNode[V]).children[0]
	}
	e := n.base()
	assert(e.size() > 0, "minEntry on empty leaf")
	return e.keys[0], e.values[0]
}

// maxEntry returns the rightmost entry of the subtree at n.
func maxEntry[V any](n treeNode[V]) (int64, V) {
	for !n.isLeaf() {
		inner := n.(*innerNode[V])
		n = inner.children[len(inner.children)-1]
	}
	e := n.base()
	assert(e.size() > 0, "maxEntry on empty leaf")
	last := e.size() - 1
	return e.keys[last], e.values[last]
}
