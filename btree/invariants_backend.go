package btree

import "fmt"

// checkBackendEntries verifies that a node's views are backed by storage of
// the configured fixed capacity.
func (t *Tree[V]) checkBackendEntries(e *entries[V]) error {
	if len(e.keys) != len(e.values) {
		return fmt.Errorf("%w: key/value occupancy mismatch (%d != %d)", ErrInvariant, len(e.keys), len(e.values))
	}
	maxKeys := t.cfg.MaxKeys()
	if cap(e.keys) != maxKeys {
		return fmt.Errorf("%w: key storage cap mismatch (%d != %d)", ErrInvariant, cap(e.keys), maxKeys)
	}
	if cap(e.values) != maxKeys {
		return fmt.Errorf("%w: value storage cap mismatch (%d != %d)", ErrInvariant, cap(e.values), maxKeys)
	}
	return nil
}

func (t *Tree[V]) checkBackendInner(inner *innerNode[V]) error {
	if inner == nil {
		return fmt.Errorf("%w: nil internal node", ErrInvariant)
	}
	maxChildren := t.cfg.MaxKeys() + 1
	if cap(inner.children) != maxChildren {
		return fmt.Errorf("%w: child storage cap mismatch (%d != %d)", ErrInvariant, cap(inner.children), maxChildren)
	}
	return nil
}
