package btree

import "fmt"

// Check validates the structural tree invariants:
//
//   - every leaf is at the same depth,
//   - every non-root node holds between t-1 and 2t-1 keys, the root at most 2t-1,
//   - keys are strictly ascending within a node and across the tree,
//   - children[i] of an inner node only holds keys between keys[i-1] and keys[i],
//   - the entry count matches the number of reachable entries.
//
// Check walks the whole tree and is meant for tests and debugging.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		return fmt.Errorf("%w: tree has no root", ErrInvariant)
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: tree height must be > 0, is %d", ErrInvariant, t.height)
	}
	if inner, ok := t.root.(*innerNode[V]); ok && inner.size() == 0 {
		return fmt.Errorf("%w: inner root without keys", ErrInvariant)
	}
	count, height, err := t.checkNode(t.root, true, keyRange{})
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	if count != t.count {
		return fmt.Errorf("%w: count mismatch (%d reachable != %d recorded)", ErrInvariant, count, t.count)
	}
	return nil
}

// keyRange is the open interval of keys a subtree may hold.
type keyRange struct {
	lo, hi       int64
	hasLo, hasHi bool
}

func (r keyRange) contains(key int64) bool {
	return (!r.hasLo || key > r.lo) && (!r.hasHi || key < r.hi)
}

func (t *Tree[V]) checkNode(n treeNode[V], isRoot bool, bounds keyRange) (count int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	e := n.base()
	if err := t.checkBackendEntries(e); err != nil {
		return 0, 0, err
	}
	maxKeys, minKeys := t.cfg.MaxKeys(), t.cfg.MinKeys()
	if e.size() > maxKeys {
		return 0, 0, fmt.Errorf("%w: key count %d exceeds %d", ErrInvariant, e.size(), maxKeys)
	}
	if !isRoot && e.size() < minKeys {
		return 0, 0, fmt.Errorf("%w: key count %d below minimum %d", ErrInvariant, e.size(), minKeys)
	}
	for i, key := range e.keys {
		if i > 0 && e.keys[i-1] >= key {
			return 0, 0, fmt.Errorf("%w: keys not ascending at index %d (%d >= %d)",
				ErrInvariant, i, e.keys[i-1], key)
		}
		if !bounds.contains(key) {
			return 0, 0, fmt.Errorf("%w: key %d outside of separator range", ErrInvariant, key)
		}
	}
	if n.isLeaf() {
		return e.size(), 1, nil
	}
	inner := n.(*innerNode[V])
	if err := t.checkBackendInner(inner); err != nil {
		return 0, 0, err
	}
	if len(inner.children) != e.size()+1 {
		return 0, 0, fmt.Errorf("%w: inner node with %d keys has %d children",
			ErrInvariant, e.size(), len(inner.children))
	}
	count = e.size()
	var childHeight int
	for i, child := range inner.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvariant, i)
		}
		r := bounds
		if i > 0 {
			r.lo, r.hasLo = e.keys[i-1], true
		}
		if i < e.size() {
			r.hi, r.hasHi = e.keys[i], true
		}
		cCount, cHeight, cErr := t.checkNode(child, false, r)
		if cErr != nil {
			return 0, 0, cErr
		}
		count += cCount
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at different depths", ErrInvariant)
		}
	}
	return count, childHeight + 1, nil
}
